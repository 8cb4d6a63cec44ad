package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vayuhu/middleware"
	bookingsvc "vayuhu/services/booking"
)

// createOrder opens a payment order covering the user's staged cart.
func (hb *HandlerBundle) createOrder(c *gin.Context) {
	var req bookingsvc.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	order, err := hb.Checkout.CreateOrder(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		getLogger(c).Error("payment order creation failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// verifyCheckout confirms payment and persists every staged booking.
func (hb *HandlerBundle) verifyCheckout(c *gin.Context) {
	var req bookingsvc.VerifyCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := hb.Checkout.VerifyAndBook(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		getLogger(c).Error("checkout verification failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
