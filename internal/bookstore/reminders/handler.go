package reminders

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrent-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/reminders/settings", h.GetSettings)
	r.PUT("/reminders/settings", h.UpdateSettings)
	r.GET("/reminders/due", h.ListDue)
}

// @Summary  Reminder settings
// @Tags     reminders
// @Produce  json
// @Success  200 {object} reminders.SettingsResponse
// @Router   /reminders/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, toSettingsResponse(h.svc.Settings(c.Request.Context())))
}

// days_before は [1,30] に丸める
// @Summary  Update reminder settings
// @Tags     reminders
// @Accept   json
// @Produce  json
// @Param    body body reminders.UpdateSettingsRequest true "fields to change"
// @Success  200 {object} reminders.SettingsResponse
// @Failure  400 {object} apierr.Body
// @Router   /reminders/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.BodyOf(apierr.ErrInvalid("invalid json")))
		return
	}
	if req.EmailTemplate != nil {
		if err := ValidateTemplate(*req.EmailTemplate); err != nil {
			c.JSON(http.StatusBadRequest, apierr.BodyOf(apierr.ErrInvalid(err.Error())))
			return
		}
	}
	c.JSON(http.StatusOK, toSettingsResponse(h.svc.UpdateSettings(c.Request.Context(), req.toPatch())))
}

// @Summary  Active rentals ending within days_before, with rendered messages
// @Tags     reminders
// @Produce  json
// @Success  200 {array} reminders.DueResponse
// @Failure  500 {object} apierr.Body
// @Router   /reminders/due [get]
func (h *Handler) ListDue(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.svc.Now()

	due := h.svc.Due(ctx, now)
	out := make([]DueResponse, 0, len(due))
	for _, r := range due {
		msg, err := h.svc.Preview(ctx, r, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierr.BodyOf(apierr.ErrInternal(err.Error())))
			return
		}
		out = append(out, DueResponse{
			RentalID: r.ID,
			BookID:   r.BookID,
			UserID:   r.UserID,
			EndDate:  r.EndDate,
			DaysLeft: daysLeft(r.EndDate, now),
			Message:  msg,
		})
	}
	c.JSON(http.StatusOK, out)
}
