package controllers

import (
	"net/http"

	"github.com/CUknot/chat_backend/utils"
	"github.com/gin-gonic/gin"
)

// SignIn godoc
// @Summary Sign in
// @Description Echoes the submitted profile back with a newly generated id
// @Tags account
// @Accept json
// @Produce json
// @Param profile body models.User true "Profile"
// @Success 200 {object} map[string]interface{} "Profile with id"
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/account/signin [post]
func SignIn(c *gin.Context) {
	var profile map[string]interface{}
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	profile["id"] = utils.GenerateID()
	c.JSON(http.StatusOK, profile)
}
