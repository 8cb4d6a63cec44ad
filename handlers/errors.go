package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingsvc "vayuhu/services/booking"
	"vayuhu/services/catalog"
)

// respondError translates service errors into HTTP responses. Validation
// problems come back 400 with the offending field; collaborator outages
// come back 502 so callers can distinguish "you messed up" from "the
// backend is down".
func respondError(c *gin.Context, err error) {
	var vErr *bookingsvc.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		return
	}

	var nfErr *catalog.OfferingNotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
		return
	}

	var collabErr *bookingsvc.CollaboratorError
	if errors.As(err, &collabErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": collabErr.Error()})
		return
	}

	switch {
	case errors.Is(err, bookingsvc.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, bookingsvc.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bookingsvc.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, bookingsvc.ErrUnitNotChosen), errors.Is(err, bookingsvc.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNoListings):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
