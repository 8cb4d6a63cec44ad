package handlers

import (
	"github.com/gin-gonic/gin"

	"vayuhu/services/booking"
	"vayuhu/services/catalog"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Catalog  catalog.Service
	Wizard   booking.WizardService
	Checkout booking.CheckoutService

	// Catalog endpoints
	GetOfferingsHandler gin.HandlerFunc
	GetOccupancyHandler gin.HandlerFunc

	// Booking wizard endpoints
	StartDraftHandler        gin.HandlerFunc
	SelectUnitHandler        gin.HandlerFunc
	SubmitDateTimeHandler    gin.HandlerFunc
	ConfirmRecurrenceHandler gin.HandlerFunc
	ReviewHandler            gin.HandlerFunc
	ApplyCouponHandler       gin.HandlerFunc
	BackHandler              gin.HandlerFunc
	CompleteHandler          gin.HandlerFunc
	CancelHandler            gin.HandlerFunc

	// Cart checkout endpoints
	CreateOrderHandler    gin.HandlerFunc
	VerifyCheckoutHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(cat catalog.Service, wiz booking.WizardService, checkout booking.CheckoutService) *HandlerBundle {
	hb := &HandlerBundle{
		Catalog:  cat,
		Wizard:   wiz,
		Checkout: checkout,
	}

	hb.GetOfferingsHandler = hb.getOfferings
	hb.GetOccupancyHandler = hb.getOccupancy

	hb.StartDraftHandler = hb.startDraft
	hb.SelectUnitHandler = hb.selectUnit
	hb.SubmitDateTimeHandler = hb.submitDateTime
	hb.ConfirmRecurrenceHandler = hb.confirmRecurrence
	hb.ReviewHandler = hb.review
	hb.ApplyCouponHandler = hb.applyCoupon
	hb.BackHandler = hb.back
	hb.CompleteHandler = hb.complete
	hb.CancelHandler = hb.cancel

	hb.CreateOrderHandler = hb.createOrder
	hb.VerifyCheckoutHandler = hb.verifyCheckout

	return hb
}
