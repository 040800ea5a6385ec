package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager-be/internal/models"
)

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// Home handles GET / - connectivity message
func (hc *HomeController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, models.Success(gin.H{
		"message": "MongoDB Connected Successfully",
	}, "success"))
}
