package controllers

import (
	"net/http"
)

// HomeController serves the service identity and health endpoints
type HomeController struct {
	db Pinger
}

// NewHomeController creates a new home controller
func NewHomeController(db Pinger) *HomeController {
	return &HomeController{db: db}
}

// Index handles GET /
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to SecureLog Encryption Service API",
	})
}

// Health handles GET /health
func (c *HomeController) Health(w http.ResponseWriter, r *http.Request) {
	if c.db != nil {
		if err := c.db.PingContext(r.Context()); err != nil {
			renderJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":  "unhealthy",
				"service": "securelog",
			})
			return
		}
	}
	renderJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "securelog",
	})
}
