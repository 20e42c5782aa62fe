package repository

import (
	"context"
	"dcasim/internal/domain"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

type BinanceRepository interface {
	GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error)
}

func NewBinanceRepository(baseUrl string) BinanceRepository {
	client := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")

	return &binanceRepositoryHandler{
		Client: client,
	}
}

type binanceRepositoryHandler struct {
	Client *resty.Client
}

func (h binanceRepositoryHandler) GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error) {
	symbol := asset.Config().BinanceSymbol
	if symbol == "" {
		return nil, fmt.Errorf("binance has no symbol for asset %s", asset)
	}

	resp, err := h.Client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":   symbol,
			"interval": "1d",
			"limit":    "1000",
		}).
		Get("/api/v3/klines")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch binance klines for %s: %w", asset, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("binance returned status %d for %s", resp.StatusCode(), asset)
	}

	// each kline is [openTime, open, high, low, close, volume, ...]
	// with prices as strings
	var klines [][]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &klines); err != nil {
		return nil, fmt.Errorf("failed to parse binance klines for %s: %w", asset, err)
	}

	series := make(domain.PriceSeries, 0, len(klines))
	for _, kline := range klines {
		if len(kline) < 5 {
			return nil, fmt.Errorf("malformed binance kline of length %d", len(kline))
		}
		var openTime int64
		if err := json.Unmarshal(kline[0], &openTime); err != nil {
			return nil, fmt.Errorf("failed to parse binance kline open time: %w", err)
		}
		var closeStr string
		if err := json.Unmarshal(kline[4], &closeStr); err != nil {
			return nil, fmt.Errorf("failed to parse binance kline close: %w", err)
		}
		closePrice, err := strconv.ParseFloat(closeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse binance close price %q: %w", closeStr, err)
		}
		series = append(series, domain.PricePoint{
			Date:  openTime,
			Price: closePrice,
		})
	}

	return series, nil
}
