package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/securelog/securelog/models"
	"github.com/securelog/securelog/services"
)

// AuditController serves the audit trail
type AuditController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, logger *zap.Logger) *AuditController {
	return &AuditController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /api/v1/logs?size=&offset=
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	size, err := queryInt(r, "size", services.DefaultPageSize)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Size must be an integer")
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Offset must be an integer")
		return
	}

	page, err := c.services.Audit.ListRecords(r.Context(), size, offset)
	switch {
	case errors.Is(err, services.ErrInvalidPageSize):
		renderError(w, http.StatusBadRequest, "Size must be at least 1")
		return
	case errors.Is(err, services.ErrInvalidOffset):
		renderError(w, http.StatusBadRequest, "Offset cannot be negative")
		return
	case err != nil:
		c.logger.Error("failed to list audit records",
			zap.Int("size", size),
			zap.Int("offset", offset),
			zap.Error(err),
		)
		renderError(w, http.StatusInternalServerError, "Failed to load logs")
		return
	}

	renderJSON(w, http.StatusOK, models.NewAuditPageResponse(page))
}

// queryInt reads an integer query parameter, returning fallback when it is absent
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
