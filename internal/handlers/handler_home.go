package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHomeRoutes sets up the root route.
func RegisterHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
}

// home godoc
// @Summary Service banner
// @Description Returns the service name and status.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "gapy-backend",
		"status":  "ok",
	})
}
