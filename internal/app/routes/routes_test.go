package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDoc(t *testing.T) {
	s := newBenchServer(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())
	assert.Equal(t, "Hostel Complaint Service API", doc.Info.Title)
	assert.Equal(t, "/api", doc.BasePath)
	for _, path := range []string{
		"/complaints/create",
		"/complaints/delete/{id}",
		"/complaints/getByIssue",
		"/complaints/admin/get",
		"/complaints/admin/update",
		"/complaints/resident/update",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newBenchServer(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/complaints/nope", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
