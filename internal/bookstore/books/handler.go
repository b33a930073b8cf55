package books

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrent-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/books", h.ListBooks)
	r.GET("/books/filters", h.FilterOptions)
	r.GET("/books/:id", h.GetBook)

	// 管理者向け
	r.POST("/books", h.CreateBook)
	r.PATCH("/books/:id", h.UpdateBook)
	r.DELETE("/books/:id", h.DeleteBook)
}

// ---------- handlers ----------

// @Summary  List books, optionally filtered
// @Tags     books
// @Produce  json
// @Param    criterion query string false "category | author | year"
// @Param    value     query string false "exact match value"
// @Success  200 {array} books.BookResponse
// @Router   /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	criterion := Criterion(c.Query("criterion"))
	value := c.Query("value")

	ctx := c.Request.Context()
	if criterion == "" || value == "" {
		c.JSON(http.StatusOK, ToResponses(h.svc.ListBooks(ctx)))
		return
	}
	c.JSON(http.StatusOK, ToResponses(h.svc.FilterBooks(ctx, criterion, value)))
}

// @Summary  Filter dropdown options
// @Tags     books
// @Produce  json
// @Success  200 {object} books.FilterOptions
// @Router   /books/filters [get]
func (h *Handler) FilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Options(c.Request.Context()))
}

// @Summary  Get a book
// @Tags     books
// @Produce  json
// @Param    id path string true "book id"
// @Success  200 {object} books.BookResponse
// @Failure  404 {object} apierr.Body
// @Router   /books/{id} [get]
func (h *Handler) GetBook(c *gin.Context) {
	b, ok := h.svc.GetBook(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, apierr.BodyOf(apierr.ErrNotFound("book not found")))
		return
	}
	c.JSON(http.StatusOK, ToResponse(b))
}

// @Summary  Add a book
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    body body books.CreateBookRequest true "book"
// @Success  201 {object} books.BookResponse
// @Failure  400 {object} apierr.Body
// @Router   /books [post]
func (h *Handler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.BodyOf(apierr.ErrInvalid("invalid json or missing required fields")))
		return
	}

	b := h.svc.AddBook(c.Request.Context(), req.toFields())
	c.Header("Location", "/books/"+b.ID)
	c.JSON(http.StatusCreated, ToResponse(b))
}

// @Summary  Partially update a book
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    id   path string                 true "book id"
// @Param    body body books.UpdateBookRequest true "fields to change"
// @Success  200 {object} books.BookResponse
// @Failure  400,404 {object} apierr.Body
// @Router   /books/{id} [patch]
func (h *Handler) UpdateBook(c *gin.Context) {
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.BodyOf(apierr.ErrInvalid("invalid json")))
		return
	}

	b, ok := h.svc.UpdateBook(c.Request.Context(), c.Param("id"), req.toPatch())
	if !ok {
		c.JSON(http.StatusNotFound, apierr.BodyOf(apierr.ErrNotFound("book not found")))
		return
	}
	c.JSON(http.StatusOK, ToResponse(b))
}

// @Summary  Delete a book
// @Tags     books
// @Param    id path string true "book id"
// @Success  204
// @Failure  404 {object} apierr.Body
// @Router   /books/{id} [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	if !h.svc.DeleteBook(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, apierr.BodyOf(apierr.ErrNotFound("book not found")))
		return
	}
	c.Status(http.StatusNoContent)
}
