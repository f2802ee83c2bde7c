package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/securelog/securelog/clientctx"
	"github.com/securelog/securelog/models"
	"github.com/securelog/securelog/repositories"
	"github.com/securelog/securelog/repositories/mocks"
	"github.com/securelog/securelog/services"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newTestControllers(t *testing.T) (*Controllers, *mocks.MockAuditRepository) {
	t.Helper()
	repo := mocks.NewMockAuditRepository(t)
	srvs := services.NewServices(&repositories.Repositories{Audit: repo}, nil, nil)
	return NewControllers(srvs, stubPinger{}, nil), repo
}

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r = r.WithContext(clientctx.SetClientAddress(r.Context(), "203.0.113.9"))
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Detail
}

func TestCipherController_Encrypt(t *testing.T) {
	ctrl, repo := newTestControllers(t)
	repo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(r *models.AuditRecord) bool {
			return r.Operation == models.OperationEncrypt && r.ClientAddress == "203.0.113.9"
		})).
		Return(nil)

	w := postJSON(ctrl.Cipher.Encrypt, `{"key":"5","data":"Hello, World!"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var resp models.TransformResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Mjqqt, Btwqi!", resp.Data)
}

func TestCipherController_Decrypt(t *testing.T) {
	ctrl, repo := newTestControllers(t)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	w := postJSON(ctrl.Cipher.Decrypt, `{"key":"5","data":"Mjqqt, Btwqi!"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.TransformResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Hello, World!", resp.Data)
}

func TestCipherController_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		decrypt bool
		body    string
		detail  string
	}{
		{"missing key field", false, `{"data":"hello"}`, "Key (shift value) is required and cannot be empty"},
		{"empty key", false, `{"key":"","data":"hello"}`, "Key (shift value) is required and cannot be empty"},
		{"null key", true, `{"key":null,"data":"hello"}`, "Key (shift value) is required and cannot be empty"},
		{"blank data encrypt", false, `{"key":"3","data":"  "}`, "Data to encrypt is required and cannot be empty"},
		{"missing data decrypt", true, `{"key":"3"}`, "Encrypted data is required and cannot be empty"},
		{"invalid key", false, `{"key":"three","data":"hello"}`, "Key must be a valid integer"},
		{"malformed json", false, `{"key":`, "Invalid request body"},
		{"wrong type", true, `{"key":3,"data":"hello"}`, "Invalid request body"},
		{"trailing garbage", false, `{"key":"5","data":"a"} garbage`, "Invalid request body"},
		{"second object", true, `{"key":"5","data":"a"}{"key":"1"}`, "Invalid request body"},
		{"empty body", false, ``, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The mock has no expectations: any audit write fails the test.
			ctrl, _ := newTestControllers(t)
			h := ctrl.Cipher.Encrypt
			if tt.decrypt {
				h = ctrl.Cipher.Decrypt
			}

			w := postJSON(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.detail, decodeDetail(t, w))
		})
	}
}

func TestCipherController_TrailingWhitespaceAccepted(t *testing.T) {
	ctrl, repo := newTestControllers(t)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	w := postJSON(ctrl.Cipher.Encrypt, "{\"key\":\"1\",\"data\":\"a\"}\n")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCipherController_AuditWriteFailure(t *testing.T) {
	ctrl, repo := newTestControllers(t)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk I/O error"))

	w := postJSON(ctrl.Cipher.Decrypt, `{"key":"1","data":"b"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decodeDetail(t, w)
	assert.Equal(t, "Decryption failed", detail)
	assert.NotContains(t, detail, "disk")
}

func TestAuditController_Index(t *testing.T) {
	ctrl, repo := newTestControllers(t)
	repo.EXPECT().Query(mock.Anything, 10, 0).Return([]models.AuditRecord{
		{ID: "id-2", Timestamp: 1_700_000_010, ClientAddress: "10.0.0.2", Operation: models.OperationDecrypt},
		{ID: "id-1", Timestamp: 1_700_000_000, ClientAddress: "10.0.0.1", Operation: models.OperationEncrypt},
	}, 2, nil)

	w := httptest.NewRecorder()
	ctrl.Audit.Index(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AuditPageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Logs, 2)
	assert.Equal(t, models.AuditRecordResponse{ID: "id-2", Timestamp: 1_700_000_010, IP: "10.0.0.2", Data: "decrypt"}, resp.Logs[0])
}

func TestAuditController_IndexEmptyIsArray(t *testing.T) {
	ctrl, repo := newTestControllers(t)
	repo.EXPECT().Query(mock.Anything, 5, 20).Return(nil, 0, nil)

	w := httptest.NewRecorder()
	ctrl.Audit.Index(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs?size=5&offset=20", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"logs":[],"total":0}`, w.Body.String())
}

func TestAuditController_BadPagination(t *testing.T) {
	tests := map[string]string{
		"/api/v1/logs?size=0":             "Size must be at least 1",
		"/api/v1/logs?size=-3":            "Size must be at least 1",
		"/api/v1/logs?offset=-1":          "Offset cannot be negative",
		"/api/v1/logs?size=ten":           "Size must be an integer",
		"/api/v1/logs?size=10&offset=1.5": "Offset must be an integer",
	}

	for target, detail := range tests {
		t.Run(target, func(t *testing.T) {
			ctrl, _ := newTestControllers(t)
			w := httptest.NewRecorder()
			ctrl.Audit.Index(w, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, detail, decodeDetail(t, w))
		})
	}
}

func TestAuditController_StoreFailure(t *testing.T) {
	ctrl, repo := newTestControllers(t)
	repo.EXPECT().Query(mock.Anything, 10, 0).Return(nil, 0, errors.New("connection refused"))

	w := httptest.NewRecorder()
	ctrl.Audit.Index(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to load logs", decodeDetail(t, w))
}

func TestHomeController(t *testing.T) {
	ctrl, _ := newTestControllers(t)

	w := httptest.NewRecorder()
	ctrl.Home.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to SecureLog Encryption Service API"}`, w.Body.String())

	w = httptest.NewRecorder()
	ctrl.Home.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	down := NewHomeController(stubPinger{err: errors.New("gone")})
	w = httptest.NewRecorder()
	down.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
