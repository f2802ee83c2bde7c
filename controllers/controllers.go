package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/securelog/securelog/models"
	"github.com/securelog/securelog/services"
)

// maxBodyBytes bounds request bodies for the cipher endpoints
const maxBodyBytes = 1 << 20

// Pinger reports whether the audit store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// renderJSON writes data as a JSON response with the given status code
func renderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// renderError writes the standard error body
func renderError(w http.ResponseWriter, statusCode int, detail string) {
	renderJSON(w, statusCode, models.ErrorResponse{Detail: detail})
}

// Controllers holds all controller instances
type Controllers struct {
	Home   *HomeController
	Cipher *CipherController
	Audit  *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, db Pinger, logger *zap.Logger) *Controllers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controllers{
		Home:   NewHomeController(db),
		Cipher: NewCipherController(services, logger),
		Audit:  NewAuditController(services, logger),
	}
}
