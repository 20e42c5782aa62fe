package repository

import (
	"context"
	"dcasim/internal/domain"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type CoinGeckoRepository interface {
	GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error)
}

func NewCoinGeckoRepository(baseUrl string) CoinGeckoRepository {
	client := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")

	return &coinGeckoRepositoryHandler{
		Client: client,
	}
}

type coinGeckoRepositoryHandler struct {
	Client *resty.Client
}

type coinGeckoMarketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}

func (h coinGeckoRepositoryHandler) GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error) {
	id := asset.Config().CoinGeckoID
	if id == "" {
		return nil, fmt.Errorf("coingecko has no id for asset %s", asset)
	}

	var chartResponse coinGeckoMarketChartResponse
	resp, err := h.Client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": "usd",
			"days":        "max",
			"interval":    "daily",
		}).
		SetResult(&chartResponse).
		Get(fmt.Sprintf("/api/v3/coins/%s/market_chart", id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coingecko history for %s: %w", asset, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("coingecko returned status %d for %s", resp.StatusCode(), asset)
	}

	series := make(domain.PriceSeries, 0, len(chartResponse.Prices))
	for _, pair := range chartResponse.Prices {
		if len(pair) != 2 {
			return nil, fmt.Errorf("malformed coingecko price pair of length %d", len(pair))
		}
		series = append(series, domain.PricePoint{
			Date:  int64(pair[0]),
			Price: pair[1],
		})
	}

	return series, nil
}
