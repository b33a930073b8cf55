package favorites

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrent-backend/internal/bookstore/books"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService(t)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), svc)
	return r
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerAddListRemove(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPut, "/api/v1/users/u1/favorites/2")
	require.Equal(t, http.StatusOK, w.Code)
	var f FavoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, "u1", f.UserID)
	assert.Equal(t, "2", f.BookID)

	w = do(r, http.MethodPut, "/api/v1/users/u1/favorites/2")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/users/u1/favorites")
	require.Equal(t, http.StatusOK, w.Code)
	var ids FavoriteIDsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ids))
	assert.Equal(t, []string{"2"}, ids.BookIDs)

	w = do(r, http.MethodGet, "/api/v1/users/u1/favorites/books")
	require.Equal(t, http.StatusOK, w.Code)
	var bs []books.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bs))
	require.Len(t, bs, 1)
	assert.Equal(t, "Мастер и Маргарита", bs[0].Title)

	w = do(r, http.MethodDelete, "/api/v1/users/u1/favorites/2")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(r, http.MethodDelete, "/api/v1/users/u1/favorites/2")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandlerToggle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/v1/users/u1/favorites/3/toggle")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"book_id":"3","favorite":true}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/v1/users/u1/favorites/3/toggle")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"book_id":"3","favorite":false}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/users/u1/favorites")
	assert.JSONEq(t, `{"user_id":"u1","book_ids":[]}`, w.Body.String())
}
