// internal/handlers/health.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Index describes the service and its endpoints.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Products REST API Service",
		"version":     "1.0.0",
		"description": "Provides RESTful API for managing product inventory",
		"endpoints": gin.H{
			"list_products":       "/products",
			"create_product":      "/products (POST)",
			"get_product":         "/products/:id",
			"update_product":      "/products/:id (PUT)",
			"delete_product":      "/products/:id (DELETE)",
			"discontinue_product": "/products/:id/discontinue (POST)",
			"favorite_product":    "/products/:id/favorite (PUT)",
			"unfavorite_product":  "/products/:id/unfavorite (PUT)",
		},
		"status": "healthy",
	})
}
