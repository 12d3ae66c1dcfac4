package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/basketful/backend/internal/domain"
	"github.com/basketful/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	match  *usecase.MatchService
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(match *usecase.MatchService, logger *zap.Logger) *Handler {
	return &Handler{match: match, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "basketful-backend",
		"version": "1.0.0",
	})
}

// MatchRecipe matches the ingredients of a recipe against the catalog,
// optionally scaled to a target serving count passed as ?servings=N.
func (h *Handler) MatchRecipe(c *gin.Context) {
	recipeID := c.Param("id")

	var targetServings *int
	if raw := c.Query("servings"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("%v: servings must be an integer", domain.ErrInvalidRequest),
			})
			return
		}
		targetServings = &n
	}

	response, err := h.match.MatchRecipeIngredients(c.Request.Context(), recipeID, targetServings)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, domain.ErrInvalidServings):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("recipe match failed",
				zap.String("recipeId", recipeID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}
