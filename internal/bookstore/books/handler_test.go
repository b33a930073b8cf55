package books

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService(t)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), svc)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerListAndFilter(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/books", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 5)

	w = doJSON(r, http.MethodGet, "/api/v1/books?criterion=year&value=1949", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "1984", filtered[0].Title)
	assert.Equal(t, "purchase", filtered[0].RentType)
}

func TestHandlerGetBook(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/books/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var b BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "Мастер и Маргарита", b.Title)

	w = doJSON(r, http.MethodGet, "/api/v1/books/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandlerCreateUpdateDelete(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/books", map[string]any{
		"title":            "Идиот",
		"author":           "Фёдор Достоевский",
		"category":         "Классика",
		"publication_year": 1869,
		"price":            410,
		"availability":     true,
		"rent_type":        "rent",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "6", created.ID)
	assert.Equal(t, "/books/6", w.Header().Get("Location"))

	w = doJSON(r, http.MethodPatch, "/api/v1/books/6", map[string]any{"price": 99})
	require.Equal(t, http.StatusOK, w.Code)
	var updated BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, "Идиот", updated.Title)
	assert.Equal(t, "rent", updated.RentType)

	w = doJSON(r, http.MethodDelete, "/api/v1/books/6", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodDelete, "/api/v1/books/6", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerRejectsBadBodies(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/books", map[string]any{"title": "no author"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ARGUMENT")

	w = doJSON(r, http.MethodPost, "/api/v1/books", map[string]any{
		"title": "t", "author": "a", "category": "c", "rent_type": "lease",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/v1/books/1", map[string]any{"rent_type": "lease"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/v1/books/missing", map[string]any{"price": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerFilterOptions(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/books/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var opts FilterOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Equal(t, []string{"Антиутопия", "Классика", "Роман", "Фэнтези"}, opts.Categories)
	assert.Equal(t, 1997, opts.Years[0])
}
