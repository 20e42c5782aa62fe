package service

import (
	"context"
	"dcasim/internal/domain"
	"dcasim/internal/util"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePriceService struct {
	seriesByAsset map[domain.Asset]domain.PriceSeries
	err           error
}

func (f fakePriceService) GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.seriesByAsset[asset], nil
}

func flatSeries(days int, price float64) domain.PriceSeries {
	start := util.NewDate(2023, 1, 1)
	out := domain.PriceSeries{}
	for i := 0; i < days; i++ {
		out = append(out, domain.PricePoint{
			Date:  start.AddDate(0, 0, i).UnixMilli(),
			Price: price,
		})
	}
	return out
}

func TestSimulationService_Simulate(t *testing.T) {
	params := domain.InvestmentParameters{
		Amount:    100,
		Frequency: domain.FrequencyWeekly,
		StartDate: util.NewDate(2023, 1, 1),
		EndDate:   util.NewDate(2023, 1, 22),
	}

	t.Run("runs the engine over fetched prices", func(t *testing.T) {
		handler := NewSimulationService(fakePriceService{
			seriesByAsset: map[domain.Asset]domain.PriceSeries{
				domain.AssetBTC: flatSeries(22, 20000),
			},
		})

		out, err := handler.Simulate(context.Background(), domain.AssetBTC, params)
		require.NoError(t, err)
		require.Equal(t, domain.AssetBTC, out.Asset)
		require.Equal(t, 4, out.Result.PurchaseCount)
		require.Equal(t, float64(400), out.Result.TotalInvested)
		require.NotNil(t, out.Metrics)
		require.Equal(t, float64(0), out.Metrics.AnnualizedVolatility)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		handler := NewSimulationService(fakePriceService{err: fmt.Errorf("no sources")})

		_, err := handler.Simulate(context.Background(), domain.AssetBTC, params)
		require.ErrorContains(t, err, "failed to get price history")
	})
}

func TestSimulationService_Compare(t *testing.T) {
	params := domain.InvestmentParameters{
		Amount:    50,
		Frequency: domain.FrequencyDaily,
		StartDate: util.NewDate(2023, 1, 1),
		EndDate:   util.NewDate(2023, 1, 10),
	}

	handler := NewSimulationService(fakePriceService{
		seriesByAsset: map[domain.Asset]domain.PriceSeries{
			domain.AssetBTC:    flatSeries(10, 20000),
			domain.AssetGold:   flatSeries(10, 1900),
			domain.AssetSilver: flatSeries(10, 24),
		},
	})

	out, err := handler.Compare(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, asset := range domain.AllAssets() {
		require.Contains(t, out, asset)
		require.Equal(t, 10, out[asset].Result.PurchaseCount)
		require.Equal(t, float64(500), out[asset].Result.TotalInvested)
	}
}
