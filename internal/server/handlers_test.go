package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaurier/doccheck/internal/db"
	"github.com/mlaurier/doccheck/internal/types"
)

// newStatelessServer builds a server without persistence: the open analyze
// endpoint, health and requirements only.
func newStatelessServer(t *testing.T) http.Handler {
	t.Helper()
	srv, err := New(Config{Port: 0})
	require.NoError(t, err)
	return srv.routes()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, newStatelessServer(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleRequirements(t *testing.T) {
	rec := doRequest(t, newStatelessServer(t), http.MethodGet, "/requirements/will", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var reqs []types.Requirement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reqs))
	assert.NotEmpty(t, reqs)
	assert.Equal(t, "slra_s4_signature", reqs[0].ID)
}

func TestHandleRequirements_UnknownType(t *testing.T) {
	rec := doRequest(t, newStatelessServer(t), http.MethodGet, "/requirements/codicil", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAnalyze_CompliantWill(t *testing.T) {
	body := `{
		"document_type": "will",
		"fields": {
			"testator_name": "Margaret Hale",
			"executors": ["John Thornton"],
			"witnesses": ["Ann Latimer", "Henry Lennox"],
			"signature_date": "2024-03-15"
		}
	}`
	rec := doRequest(t, newStatelessServer(t), http.MethodPost, "/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Degraded)
	assert.Equal(t, 100.0, resp.Result.ComplianceScore)
	assert.Nil(t, resp.ID, "no persistence without a database")
}

func TestHandleAnalyze_UnknownTypeStillOK(t *testing.T) {
	rec := doRequest(t, newStatelessServer(t), http.MethodPost, "/analyze",
		`{"document_type": "codicil", "fields": {}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
	assert.Contains(t, resp.Reasons, types.CodeUnknownDocumentType)
	assert.Equal(t, 0.0, resp.Result.ComplianceScore)
}

func TestHandleAnalyze_BadJSON(t *testing.T) {
	rec := doRequest(t, newStatelessServer(t), http.MethodPost, "/analyze", `{"document_type":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MissingDocumentType(t *testing.T) {
	rec := doRequest(t, newStatelessServer(t), http.MethodPost, "/analyze", `{"fields": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_NonObjectFields(t *testing.T) {
	rec := doRequest(t, newStatelessServer(t), http.MethodPost, "/analyze",
		`{"document_type": "will", "fields": [1, 2]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_NoAuthEndpointsWithoutDatabase(t *testing.T) {
	handler := newStatelessServer(t)

	for _, path := range []string{"/auth/register", "/auth/login"} {
		rec := doRequest(t, handler, http.MethodPost, path, `{}`)
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s should not exist in stateless mode", path)
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(&ErrEmailAlreadyExists{Email: "a@b.c"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "email", Message: "required"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(db.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
