package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/models"
)

// writeError maps a domain error to its HTTP status and writes the structured
// error body. Anything outside the domain taxonomy is a store failure and
// surfaces as a 500.
func writeError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, entities.ErrInvalidID),
		errors.Is(err, entities.ErrEmailExists):
		code = http.StatusBadRequest
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrTeamMemberNotFound):
		code = http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidPassword):
		code = http.StatusUnauthorized
	}

	log.Printf("Error %d: %v", code, err)
	c.JSON(code, models.ErrorResponse{Message: err.Error()})
}

// writeBindError writes a 400 for a request body that failed schema
// validation, with per-field detail when the validator produced any.
func writeBindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag()))
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "validation failed: " + strings.Join(fields, "; "),
		})
		return
	}

	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Message: "invalid request body: " + err.Error(),
	})
}
