// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appparse "github.com/grocerly/recipetext/internal/application/parse"
	"github.com/grocerly/recipetext/internal/infrastructure/config"
	"github.com/grocerly/recipetext/internal/parser"
	"github.com/grocerly/recipetext/pkg/errors"
)

// ParseHandlers handles the parse API requests
type ParseHandlers struct {
	service  *appparse.Service
	validate *validator.Validate
	limits   config.ParserConfig
	logger   *zap.Logger
}

// NewParseHandlers creates a new parse handlers instance
func NewParseHandlers(service *appparse.Service, limits config.ParserConfig, logger *zap.Logger) *ParseHandlers {
	return &ParseHandlers{
		service:  service,
		validate: validator.New(),
		limits:   limits,
		logger:   logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError is the JSON shape of an error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ParseRecipeRequest is the payload for POST /api/v1/parse
type ParseRecipeRequest struct {
	Title        string   `json:"title" validate:"max=500"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1"`
	Instructions []string `json:"instructions"`
}

// ParseLinesRequest is the payload for the fragment endpoints
type ParseLinesRequest struct {
	Lines []string `json:"lines" validate:"required,min=1"`
}

// ParseRecipe handles POST /api/v1/parse
func (h *ParseHandlers) ParseRecipe(w http.ResponseWriter, r *http.Request) {
	var req ParseRecipeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.checkLimits(append(req.Ingredients, req.Instructions...)); err != nil {
		h.writeError(w, err)
		return
	}

	recipe := h.service.ParseRecipe(r.Context(), parser.Input{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: recipe})
}

// ParseIngredients handles POST /api/v1/parse/ingredients
func (h *ParseHandlers) ParseIngredients(w http.ResponseWriter, r *http.Request) {
	var req ParseLinesRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.checkLimits(req.Lines); err != nil {
		h.writeError(w, err)
		return
	}

	ingredients := h.service.ParseIngredients(r.Context(), req.Lines)
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: ingredients})
}

// ParseInstructions handles POST /api/v1/parse/instructions
func (h *ParseHandlers) ParseInstructions(w http.ResponseWriter, r *http.Request) {
	var req ParseLinesRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.checkLimits(req.Lines); err != nil {
		h.writeError(w, err)
		return
	}

	steps := h.service.ParseInstructions(r.Context(), req.Lines)
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: steps})
}

// HealthCheck handles GET /health
func (h *ParseHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		},
	})
}

// decode unmarshals and validates the request body, writing the error
// response itself when the payload is unusable.
func (h *ParseHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, errors.NewBadRequestError("Malformed JSON body").WithCause(err))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

// checkLimits enforces the configured input bounds before the engine runs.
func (h *ParseHandlers) checkLimits(lines []string) *errors.AppError {
	if len(lines) > h.limits.MaxLines {
		return errors.NewPayloadTooLargeError(
			fmt.Sprintf("at most %d lines accepted", h.limits.MaxLines))
	}
	for _, line := range lines {
		if len(line) > h.limits.MaxLineLength {
			return errors.NewPayloadTooLargeError(
				fmt.Sprintf("lines are limited to %d bytes", h.limits.MaxLineLength))
		}
	}
	return nil
}

// writeError maps an AppError to its HTTP status and JSON shape
func (h *ParseHandlers) writeError(w http.ResponseWriter, appErr *errors.AppError) {
	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error: &APIError{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// writeJSON writes a JSON response
func (h *ParseHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}
