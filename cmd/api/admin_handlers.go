package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeshop-api/internal/analytics"
)

// @Summary  Dashboard aggregates (admin)
// @Tags     admin
// @Security BearerAuth
// @Produce  json
// @Success  200 {object} analytics.Dashboard
// @Router   /admin/orders/analytics [get]
func analyticsHandler(stats analytics.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := stats.Dashboard(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analytics error"})
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
