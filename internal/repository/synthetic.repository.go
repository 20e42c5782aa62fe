package repository

import (
	"context"
	"dcasim/internal/domain"
	"dcasim/internal/util"
	"hash/fnv"
	"math/rand"
	"time"
)

// SyntheticRepository generates a plausible random-walk price series
// when every upstream source has failed, so the engine always has
// input. The walk is seeded per asset and therefore stable across
// calls within a process lifetime.
type SyntheticRepository interface {
	GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error)
}

func NewSyntheticRepository() SyntheticRepository {
	return &syntheticRepositoryHandler{
		now: time.Now,
	}
}

type syntheticRepositoryHandler struct {
	now func() time.Time
}

type syntheticProfile struct {
	startPrice float64
	drift      float64
	volatility float64
}

var syntheticProfiles = map[domain.Asset]syntheticProfile{
	domain.AssetBTC:    {startPrice: 16500, drift: 1.002, volatility: 0.03},
	domain.AssetGold:   {startPrice: 1800, drift: 1.0005, volatility: 0.01},
	domain.AssetSilver: {startPrice: 24, drift: 1.0003, volatility: 0.01},
}

func (h syntheticRepositoryHandler) GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error) {
	profile, ok := syntheticProfiles[asset]
	if !ok {
		profile = syntheticProfile{startPrice: 100, drift: 1.0015, volatility: 0.02}
	}

	seed := fnv.New64a()
	seed.Write([]byte(asset))
	r := rand.New(rand.NewSource(int64(seed.Sum64())))

	start := util.NewDate(2023, 1, 1)
	end := util.StartOfDay(h.now())

	series := domain.PriceSeries{}
	price := profile.startPrice
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		series = append(series, domain.PricePoint{
			Date:  day.UnixMilli(),
			Price: price,
		})
		change := 1 + (r.Float64()*profile.volatility*2 - profile.volatility)
		price = price * change * profile.drift
	}

	return series, nil
}
