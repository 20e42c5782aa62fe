package service

import (
	"context"
	"dcasim/internal/domain"
	"dcasim/internal/logger"
	"dcasim/internal/repository"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

/**

behavior - when a caller asks for an asset's history, try the upstream
sources in order and hand back the first non-empty series. successful
fetches are cached for a bounded duration so repeated simulations over
the same asset don't hammer the upstreams. if every source fails, fall
back to a locally synthesized series - the engine must always receive
valid input.

*/

type PriceService interface {
	GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error)
}

type priceSource interface {
	GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error)
}

type namedPriceSource struct {
	Name   string
	Source priceSource
}

func NewPriceService(
	binanceRepository repository.BinanceRepository,
	coinGeckoRepository repository.CoinGeckoRepository,
	yahooRepository repository.YahooRepository,
	syntheticRepository repository.SyntheticRepository,
	cacheTTL time.Duration,
) PriceService {
	return &priceServiceHandler{
		Sources: []namedPriceSource{
			{Name: "binance", Source: binanceRepository},
			{Name: "coingecko", Source: coinGeckoRepository},
			{Name: "yahoo", Source: yahooRepository},
		},
		SyntheticRepository: syntheticRepository,
		cache:               gocache.New(cacheTTL, 10*time.Minute),
	}
}

type priceServiceHandler struct {
	Sources             []namedPriceSource
	SyntheticRepository repository.SyntheticRepository
	cache               *gocache.Cache
}

func (h *priceServiceHandler) GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error) {
	log := logger.FromContext(ctx)

	if cached, ok := h.cache.Get(string(asset)); ok {
		return cached.(domain.PriceSeries), nil
	}

	for _, source := range h.Sources {
		series, err := source.Source.GetPriceHistory(ctx, asset)
		if err != nil {
			log.Warnf("price source %s failed for %s: %v", source.Name, asset, err)
			continue
		}
		if len(series) == 0 {
			log.Warnf("price source %s returned empty series for %s", source.Name, asset)
			continue
		}
		h.cache.Set(string(asset), series, gocache.DefaultExpiration)
		return series, nil
	}

	log.Warnf("all price sources failed for %s - using synthetic fallback", asset)
	series, err := h.SyntheticRepository.GetPriceHistory(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("synthetic fallback failed for %s: %w", asset, err)
	}

	// deliberately not cached: a real source may recover before the
	// TTL would expire
	return series, nil
}
