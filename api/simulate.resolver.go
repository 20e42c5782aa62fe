package api

import (
	"context"
	"dcasim/internal/domain"
	"dcasim/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SimulateRequest struct {
	Asset         string  `json:"asset" form:"asset"`
	Amount        float64 `json:"amount" form:"amount"`
	Frequency     string  `json:"frequency" form:"frequency"`
	StartDate     string  `json:"startDate" form:"startDate"`
	EndDate       string  `json:"endDate" form:"endDate"`
	InflationRate float64 `json:"inflation" form:"inflation"`
}

type SimulateResponse struct {
	*service.SimulationResponse
	Profile *domain.Profile `json:"profile"`
}

func (m ApiHandler) simulate(c *gin.Context) {
	requestBody, err := bindSimulateRequest(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	asset, err := domain.NewAsset(requestBody.Asset)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	params, err := investmentParamsFromRequest(*requestBody)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile, endProfile := domain.NewProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	response, err := m.SimulationService.Simulate(ctx, asset, params)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	endProfile()

	c.JSON(200, SimulateResponse{
		SimulationResponse: response,
		Profile:            profile,
	})
}

func bindSimulateRequest(c *gin.Context) (*SimulateRequest, error) {
	var requestBody SimulateRequest
	if c.Request.Method == http.MethodGet {
		if err := c.ShouldBindQuery(&requestBody); err != nil {
			return nil, fmt.Errorf("failed to read query params: %w", err)
		}
	} else if err := c.ShouldBindJSON(&requestBody); err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return &requestBody, nil
}

func investmentParamsFromRequest(requestBody SimulateRequest) (domain.InvestmentParameters, error) {
	if requestBody.Amount <= 0 {
		return domain.InvestmentParameters{}, fmt.Errorf("amount must be positive, got %f", requestBody.Amount)
	}

	frequency, err := domain.NewFrequency(requestBody.Frequency)
	if err != nil {
		return domain.InvestmentParameters{}, err
	}

	startDate, err := time.Parse("2006-01-02", requestBody.StartDate)
	if err != nil {
		return domain.InvestmentParameters{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate := time.Now().UTC()
	if requestBody.EndDate != "" {
		endDate, err = time.Parse("2006-01-02", requestBody.EndDate)
		if err != nil {
			return domain.InvestmentParameters{}, fmt.Errorf("failed to parse end date: %w", err)
		}
	}
	if endDate.Before(startDate) {
		return domain.InvestmentParameters{}, fmt.Errorf("end date cannot be before start date")
	}

	return domain.InvestmentParameters{
		Amount:        requestBody.Amount,
		Frequency:     frequency,
		StartDate:     startDate,
		EndDate:       endDate,
		InflationRate: requestBody.InflationRate,
	}, nil
}
