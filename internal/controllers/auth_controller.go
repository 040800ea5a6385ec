package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/models"
	"taskmanager-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup handles POST /signup/
func (ac *AuthController) Signup(c *gin.Context) {
	var user entities.User
	if err := c.ShouldBindJSON(&user); err != nil {
		writeBindError(c, err)
		return
	}

	details, err := ac.authService.Signup(c.Request.Context(), &user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(models.UserDetailsResponse{UserDetails: *details}, "User Created"))
}

// Login handles POST /login/
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	details, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(models.UserDetailsResponse{UserDetails: *details}, "User Logged in"))
}
