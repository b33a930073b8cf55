package rentals

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrent-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/rental-periods", h.ListPeriods)
	r.GET("/books/:id/quotes", h.ListQuotes)
	r.POST("/rentals", h.CreateRental)
	r.GET("/users/:user_id/rentals", h.ListUserRentals)
}

// ---------- handlers ----------

// @Summary  List rental periods
// @Tags     rentals
// @Produce  json
// @Success  200 {array} rentals.PeriodResponse
// @Router   /rental-periods [get]
func (h *Handler) ListPeriods(c *gin.Context) {
	c.JSON(http.StatusOK, toPeriodResponses(h.svc.RentalPeriods(c.Request.Context())))
}

// 貸出モーダル用の期間ごとの価格
// @Summary  Price a book for every rental period
// @Tags     rentals
// @Produce  json
// @Param    id path string true "book id"
// @Success  200 {array} rentals.Quote
// @Failure  404 {object} apierr.Body
// @Router   /books/{id}/quotes [get]
func (h *Handler) ListQuotes(c *gin.Context) {
	quotes, ok := h.svc.Quotes(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, apierr.BodyOf(apierr.ErrNotFound("book not found")))
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// @Summary  Rent a book
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Param    body body rentals.CreateRentalRequest true "rental"
// @Success  201 {object} rentals.RentalResponse
// @Failure  400,404 {object} apierr.Body
// @Router   /rentals [post]
func (h *Handler) CreateRental(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.BodyOf(apierr.ErrInvalid("invalid json or missing required fields")))
		return
	}

	r, ok := h.svc.RentBook(c.Request.Context(), req.BookID, req.UserID, req.PeriodID)
	if !ok {
		c.JSON(http.StatusNotFound, apierr.BodyOf(apierr.ErrNotFound("rental period not found or book not rentable")))
		return
	}
	c.Header("Location", "/rentals/"+r.ID)
	c.JSON(http.StatusCreated, toRentalResponse(r))
}

// @Summary  List a user's rentals
// @Tags     rentals
// @Produce  json
// @Param    user_id path string true "user id"
// @Success  200 {array} rentals.RentalResponse
// @Router   /users/{user_id}/rentals [get]
func (h *Handler) ListUserRentals(c *gin.Context) {
	c.JSON(http.StatusOK, toRentalResponses(h.svc.UserRentals(c.Request.Context(), c.Param("user_id"))))
}
