// internal/handlers/product.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/productcatalog/products-service/internal/models"
	"github.com/productcatalog/products-service/internal/services"
	"github.com/productcatalog/products-service/internal/utils"
)

// truthy tokens accepted by the availability filter and the confirm gate
var truthyTokens = map[string]bool{"true": true, "yes": true, "1": true, "y": true}

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /products
//
// The category, name and availability filters are mutually exclusive
// alternatives applied in that precedence order. Results are always sorted by
// name; page/limit slicing happens after sorting, only when the caller asked
// for it.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		products []models.Product
		err      error
	)

	switch {
	case c.Query("category") != "":
		products, err = h.productService.FindByCategory(ctx, c.Query("category"))
	case c.Query("name") != "":
		products, err = h.productService.FindByName(ctx, c.Query("name"))
	case c.Query("availability") != "":
		available := truthyTokens[strings.ToLower(c.Query("availability"))]
		products, err = h.productService.FindByAvailability(ctx, available)
	default:
		products, err = h.productService.All(ctx)
	}
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	pageStr, hasPage := c.GetQuery("page")
	limitStr, hasLimit := c.GetQuery("limit")
	if hasPage || hasLimit {
		page, limit := utils.ParsePageLimit(pageStr, limitStr)
		products = utils.Paginate(products, page, limit)
	}

	results := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}
	c.JSON(http.StatusOK, results)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.findActive(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, product.Serialize())
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.BadRequestResponse(c, "body of request contained bad or no data")
		return
	}

	product := &models.Product{}
	if err := product.Deserialize(data); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(product)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.productService.Create(c.Request.Context(), product); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", strings.TrimRight(c.Request.URL.Path, "/"), product.ID))
	c.JSON(http.StatusCreated, product.Serialize())
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	product, ok := h.findActive(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "body of request contained bad or no data: "+err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := req.Apply(product); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.productService.Update(c.Request.Context(), product); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, product.Serialize())
}

// DELETE /products/:id
//
// Always succeeds: deleting an id that never existed is not an error.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.NotFoundResponse(c, fmt.Sprintf("product with id '%s' was not found", c.Param("id")))
		return
	}

	product, err := h.productService.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			logrus.WithField("id", id).Warn("Product not found, nothing to delete")
			c.Status(http.StatusNoContent)
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.productService.Delete(c.Request.Context(), product); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /products/:id/discontinue
//
// Discontinuation is one-way and destructive for the read paths, so it is
// gated on an explicit confirm signal in the query string or JSON body.
func (h *ProductHandler) DiscontinueProduct(c *gin.Context) {
	if !confirmed(c) {
		utils.BadRequestResponse(c, "Discontinuing requires confirmation. Add confirm=true to proceed.")
		return
	}

	product, ok := h.findActive(c)
	if !ok {
		return
	}

	product.Discontinued = true
	product.Availability = false
	if err := h.productService.Update(c.Request.Context(), product); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	logrus.WithField("id", product.ID).Info("Product discontinued")
	c.JSON(http.StatusOK, product.Serialize())
}

// PUT /products/:id/favorite
func (h *ProductHandler) FavoriteProduct(c *gin.Context) {
	h.setFavorited(c, true)
}

// PUT /products/:id/unfavorite
func (h *ProductHandler) UnfavoriteProduct(c *gin.Context) {
	h.setFavorited(c, false)
}

// setFavorited flips the favorited flag toward target. Both directions are
// idempotent: a product already in the target state is not re-persisted.
func (h *ProductHandler) setFavorited(c *gin.Context, target bool) {
	product, ok := h.findActive(c)
	if !ok {
		return
	}

	if product.Favorited != target {
		product.Favorited = target
		if err := h.productService.Update(c.Request.Context(), product); err != nil {
			utils.BadRequestResponse(c, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"id": product.ID, "favorited": target})
}

// findActive resolves the :id parameter to a non-discontinued product, or
// writes a 404 and reports false. Discontinued rows look deleted from here.
func (h *ProductHandler) findActive(c *gin.Context) (*models.Product, bool) {
	id, err := parseID(c)
	if err != nil {
		utils.NotFoundResponse(c, fmt.Sprintf("product with id '%s' was not found", c.Param("id")))
		return nil, false
	}

	product, err := h.productService.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			utils.NotFoundResponse(c, fmt.Sprintf("product with id '%d' was not found", id))
		} else {
			utils.BadRequestResponse(c, err.Error())
		}
		return nil, false
	}
	if product.Discontinued {
		utils.NotFoundResponse(c, fmt.Sprintf("product with id '%d' was not found", id))
		return nil, false
	}
	return product, true
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// requireJSON enforces the Content-Type on write endpoints.
func requireJSON(c *gin.Context) bool {
	contentType := c.GetHeader("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, "application/json") {
		utils.UnsupportedMediaTypeResponse(c, "Content-Type must be application/json")
		return false
	}
	return true
}

// confirmed checks the discontinue confirmation gate. A confirm query
// parameter takes precedence; otherwise a confirm field in a JSON body is
// honored. Booleans, the usual truthy strings and nonzero numbers all count.
func confirmed(c *gin.Context) bool {
	if arg, ok := c.GetQuery("confirm"); ok {
		return truthyTokens[strings.ToLower(arg)]
	}

	if !strings.HasPrefix(c.GetHeader("Content-Type"), "application/json") {
		return false
	}
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		return false
	}

	switch v := payload["confirm"].(type) {
	case bool:
		return v
	case string:
		return truthyTokens[strings.ToLower(v)]
	case float64:
		return v != 0
	default:
		return false
	}
}
