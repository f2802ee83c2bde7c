package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/securelog/securelog/clientctx"
	"github.com/securelog/securelog/models"
	"github.com/securelog/securelog/services"
)

// CipherController handles encrypt and decrypt requests
type CipherController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewCipherController creates a new cipher controller
func NewCipherController(services *services.Services, logger *zap.Logger) *CipherController {
	return &CipherController{
		services: services,
		logger:   logger,
	}
}

// Encrypt handles POST /api/v1/encrypt
func (c *CipherController) Encrypt(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, models.OperationEncrypt)
}

// Decrypt handles POST /api/v1/decrypt
func (c *CipherController) Decrypt(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, models.OperationDecrypt)
}

func (c *CipherController) handle(w http.ResponseWriter, r *http.Request, kind models.OperationKind) {
	req, err := decodeTransformRequest(w, r)
	if err != nil {
		c.logger.Debug("invalid request body", zap.String("operation", string(kind)), zap.Error(err))
		renderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := c.services.Cipher.Handle(
		r.Context(),
		kind,
		req.KeyText(),
		req.DataText(),
		clientctx.GetClientAddress(r.Context()),
	)
	if err != nil {
		status, detail := cipherErrorResponse(kind, err)
		renderError(w, status, detail)
		return
	}

	renderJSON(w, http.StatusOK, models.TransformResponse{Data: result.Data})
}

// decodeTransformRequest reads exactly one JSON object from the body
func decodeTransformRequest(w http.ResponseWriter, r *http.Request) (models.TransformRequest, error) {
	var req models.TransformRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, errors.New("unexpected data after JSON body")
	}
	return req, nil
}

// cipherErrorResponse maps a service error onto a status code and a message
// that is safe to show to the caller.
func cipherErrorResponse(kind models.OperationKind, err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingKey):
		return http.StatusBadRequest, "Key (shift value) is required and cannot be empty"
	case errors.Is(err, services.ErrMissingData):
		if kind == models.OperationDecrypt {
			return http.StatusBadRequest, "Encrypted data is required and cannot be empty"
		}
		return http.StatusBadRequest, "Data to encrypt is required and cannot be empty"
	case errors.Is(err, services.ErrInvalidKey):
		return http.StatusBadRequest, "Key must be a valid integer"
	}

	if kind == models.OperationDecrypt {
		return http.StatusInternalServerError, "Decryption failed"
	}
	return http.StatusInternalServerError, "Encryption failed"
}
