package service

import (
	"context"
	"dcasim/internal"
	"dcasim/internal/calculator"
	"dcasim/internal/domain"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

type SimulationService interface {
	Simulate(ctx context.Context, asset domain.Asset, params domain.InvestmentParameters) (*SimulationResponse, error)
	Compare(ctx context.Context, params domain.InvestmentParameters) (map[domain.Asset]*SimulationResponse, error)
}

type SimulationResponse struct {
	Asset   domain.Asset                  `json:"asset"`
	Result  domain.InvestmentResult       `json:"result"`
	Metrics *calculator.SimulationMetrics `json:"metrics"`
}

func NewSimulationService(priceService PriceService) SimulationService {
	return &simulationServiceHandler{
		PriceService: priceService,
	}
}

type simulationServiceHandler struct {
	PriceService PriceService
}

func (h simulationServiceHandler) Simulate(ctx context.Context, asset domain.Asset, params domain.InvestmentParameters) (*SimulationResponse, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("fetch prices")
	prices, err := h.PriceService.GetPriceHistory(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("failed to get price history for %s: %w", asset, err)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("simulate")
	result := internal.CalculateDCA(prices, params)
	endSpan()

	_, endSpan = profile.StartNewSpan("metrics")
	metrics, err := calculator.CalculateMetrics(result)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate metrics for %s: %w", asset, err)
	}
	endSpan()

	return &SimulationResponse{
		Asset:   asset,
		Result:  result,
		Metrics: metrics,
	}, nil
}

// Compare runs one independent simulation per asset. The engine is
// pure, so the runs share nothing and fan out concurrently.
func (h simulationServiceHandler) Compare(ctx context.Context, params domain.InvestmentParameters) (map[domain.Asset]*SimulationResponse, error) {
	var (
		mu  sync.Mutex
		out = map[domain.Asset]*SimulationResponse{}
	)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, asset := range domain.AllAssets() {
		asset := asset
		group.Go(func() error {
			// each run gets its own profile; spans are not safe to
			// share across goroutines
			profile, endProfile := domain.NewProfile()
			defer endProfile()
			runCtx := context.WithValue(groupCtx, domain.ContextProfileKey, profile)

			response, err := h.Simulate(runCtx, asset, params)
			if err != nil {
				return err
			}
			mu.Lock()
			out[asset] = response
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
