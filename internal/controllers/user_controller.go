package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager-be/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers handles GET /allusers/ - returns up to 100 masked user summaries
// as a bare array
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
