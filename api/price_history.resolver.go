package api

import (
	"dcasim/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) priceHistory(c *gin.Context) {
	asset, err := domain.NewAsset(c.Query("asset"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	series, err := m.PriceService.GetPriceHistory(c.Request.Context(), asset)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"asset":  asset,
		"prices": series,
	})
}
