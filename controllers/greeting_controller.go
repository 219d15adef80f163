package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greeting godoc
// @Summary API greeting
// @Tags meta
// @Produce plain
// @Success 200 {string} string "Greeting"
// @Router /api/ [get]
func Greeting(c *gin.Context) {
	c.String(http.StatusOK, "Hello Gin!")
}
