package api

import (
	"dcasim/internal/domain"
	"dcasim/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type CompareRequest struct {
	Amount        float64 `json:"amount"`
	Frequency     string  `json:"frequency"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	InflationRate float64 `json:"inflation"`
}

type CompareResponse struct {
	Results map[domain.Asset]*service.SimulationResponse `json:"results"`
}

func (m ApiHandler) compare(c *gin.Context) {
	var requestBody CompareRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	params, err := investmentParamsFromRequest(SimulateRequest{
		Amount:        requestBody.Amount,
		Frequency:     requestBody.Frequency,
		StartDate:     requestBody.StartDate,
		EndDate:       requestBody.EndDate,
		InflationRate: requestBody.InflationRate,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	results, err := m.SimulationService.Compare(c.Request.Context(), params)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, CompareResponse{Results: results})
}
