package favorites

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrent-backend/internal/bookstore/books"
	"bookrent-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/users/:user_id/favorites", h.ListIDs)
	r.GET("/users/:user_id/favorites/books", h.ListBooks)
	r.PUT("/users/:user_id/favorites/:book_id", h.Add)
	r.DELETE("/users/:user_id/favorites/:book_id", h.Remove)
	r.POST("/users/:user_id/favorites/:book_id/toggle", h.Toggle)
}

// @Summary  Favorite book ids of a user
// @Tags     favorites
// @Produce  json
// @Param    user_id path string true "user id"
// @Success  200 {object} favorites.FavoriteIDsResponse
// @Router   /users/{user_id}/favorites [get]
func (h *Handler) ListIDs(c *gin.Context) {
	userID := c.Param("user_id")
	c.JSON(http.StatusOK, FavoriteIDsResponse{
		UserID:  userID,
		BookIDs: h.svc.FavoriteBookIDs(c.Request.Context(), userID),
	})
}

// @Summary  Favorite books of a user
// @Tags     favorites
// @Produce  json
// @Param    user_id path string true "user id"
// @Success  200 {array} books.BookResponse
// @Router   /users/{user_id}/favorites/books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	bs := h.svc.FavoriteBooks(c.Request.Context(), c.Param("user_id"))
	c.JSON(http.StatusOK, books.ToResponses(bs))
}

// PUT は冪等なので常に200
// @Summary  Mark a book as favorite
// @Tags     favorites
// @Produce  json
// @Param    user_id path string true "user id"
// @Param    book_id path string true "book id"
// @Success  200 {object} favorites.FavoriteResponse
// @Router   /users/{user_id}/favorites/{book_id} [put]
func (h *Handler) Add(c *gin.Context) {
	f := h.svc.AddFavorite(c.Request.Context(), c.Param("user_id"), c.Param("book_id"))
	c.JSON(http.StatusOK, toFavoriteResponse(f))
}

// @Summary  Unmark a favorite
// @Tags     favorites
// @Param    user_id path string true "user id"
// @Param    book_id path string true "book id"
// @Success  204
// @Failure  404 {object} apierr.Body
// @Router   /users/{user_id}/favorites/{book_id} [delete]
func (h *Handler) Remove(c *gin.Context) {
	if !h.svc.RemoveFavorite(c.Request.Context(), c.Param("user_id"), c.Param("book_id")) {
		c.JSON(http.StatusNotFound, apierr.BodyOf(apierr.ErrNotFound("favorite not found")))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary  Toggle a favorite
// @Tags     favorites
// @Produce  json
// @Param    user_id path string true "user id"
// @Param    book_id path string true "book id"
// @Success  200 {object} favorites.ToggleResponse
// @Router   /users/{user_id}/favorites/{book_id}/toggle [post]
func (h *Handler) Toggle(c *gin.Context) {
	bookID := c.Param("book_id")
	on := h.svc.Toggle(c.Request.Context(), c.Param("user_id"), bookID)
	c.JSON(http.StatusOK, ToggleResponse{BookID: bookID, Favorite: on})
}
