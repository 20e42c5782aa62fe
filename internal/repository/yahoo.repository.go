package repository

import (
	"context"
	"dcasim/internal/domain"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type YahooRepository interface {
	GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error)
}

func NewYahooRepository() YahooRepository {
	return &yahooRepositoryHandler{}
}

type yahooRepositoryHandler struct{}

func (h yahooRepositoryHandler) GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error) {
	symbol := asset.Config().YahooSymbol
	if symbol == "" {
		return nil, fmt.Errorf("yahoo has no symbol for asset %s", asset)
	}

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	series := domain.PriceSeries{}
	for iter.Next() {
		series = append(series, domain.PricePoint{
			Date:  int64(iter.Bar().Timestamp) * 1000,
			Price: iter.Bar().AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get yahoo prices for %s: %w", symbol, err)
	}

	return series, nil
}
