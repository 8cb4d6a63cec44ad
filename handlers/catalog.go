package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getOfferings returns the normalized workspace catalog.
func (hb *HandlerBundle) getOfferings(c *gin.Context) {
	offerings, err := hb.Catalog.Offerings(c.Request.Context())
	if err != nil {
		getLogger(c).Error("catalog fetch failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offerings": offerings})
}

// getOccupancy returns a live occupancy summary across all active listings.
func (hb *HandlerBundle) getOccupancy(c *gin.Context) {
	summary, err := hb.Catalog.Occupancy(c.Request.Context())
	if err != nil {
		getLogger(c).Error("occupancy fetch failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
