package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uiforge/uiforge-backend/internal/requestdata"
	"github.com/uiforge/uiforge-backend/internal/services"
)

type AgentsHandler struct {
	generationService services.GenerationService
}

func NewAgentsHandler(generationService services.GenerationService) *AgentsHandler {
	return &AgentsHandler{generationService: generationService}
}

// GenerateComponent runs the full agent pipeline for one request. Input
// problems come back as 400 before any model call is made; pipeline failures
// surface as 500 with a generic message.
func (gh *AgentsHandler) GenerateComponent(c *gin.Context) {
	var req struct {
		ComponentType string `json:"componentType"`
		Description   string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}

	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing caller identity"))
		return
	}

	gen, err := gh.generationService.GenerateComponent(c.Request.Context(), services.GenerateComponentRequest{
		UserID:        rd.UserID,
		ComponentType: req.ComponentType,
		Description:   req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyDescription), errors.Is(err, services.ErrUnknownType):
			RespondError(c, http.StatusBadRequest, "invalid_request", err)
		default:
			RespondError(c, http.StatusInternalServerError, "generation_failed", errors.New("component generation failed"))
		}
		return
	}
	RespondOK(c, gen)
}

func (gh *AgentsHandler) GetGeneratedComponents(c *gin.Context) {
	generations, err := gh.generationService.ListGenerations(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", errors.New("failed to list generated components"))
		return
	}
	RespondOK(c, gin.H{"components": generations})
}
