package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vayuhu/middleware"
	bookingsvc "vayuhu/services/booking"
)

// startDraft opens a new booking draft for the authenticated user.
func (hb *HandlerBundle) startDraft(c *gin.Context) {
	var req bookingsvc.StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := hb.Wizard.StartDraft(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// selectUnit records the user's explicit unit choice on the seat grid.
func (hb *HandlerBundle) selectUnit(c *gin.Context) {
	var req struct {
		UnitID string `json:"unitId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := hb.Wizard.SelectUnit(c.Request.Context(), c.Param("draftID"), req.UnitID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// submitDateTime handles the date/time step of the wizard.
func (hb *HandlerBundle) submitDateTime(c *gin.Context) {
	var req bookingsvc.DateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := hb.Wizard.SubmitDateTime(c.Request.Context(), c.Param("draftID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// confirmRecurrence handles the recurrence step, optionally overriding the
// derived end date for multi-day daily plans.
func (hb *HandlerBundle) confirmRecurrence(c *gin.Context) {
	var req bookingsvc.RecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := hb.Wizard.ConfirmRecurrence(c.Request.Context(), c.Param("draftID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// review returns the draft with its full price breakdown.
func (hb *HandlerBundle) review(c *gin.Context) {
	state, err := hb.Wizard.Review(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// applyCoupon validates a coupon code and applies its discount to the draft.
func (hb *HandlerBundle) applyCoupon(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := hb.Wizard.ApplyCoupon(c.Request.Context(), c.Param("draftID"), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// back steps the wizard backwards one step, keeping entered values.
func (hb *HandlerBundle) back(c *gin.Context) {
	state, err := hb.Wizard.Back(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// complete submits the reviewed draft as a confirmed booking.
func (hb *HandlerBundle) complete(c *gin.Context) {
	var req bookingsvc.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := hb.Wizard.Complete(c.Request.Context(), c.Param("draftID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// cancel discards the draft entirely.
func (hb *HandlerBundle) cancel(c *gin.Context) {
	if err := hb.Wizard.Cancel(c.Request.Context(), c.Param("draftID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
