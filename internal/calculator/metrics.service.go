package calculator

import (
	"dcasim/internal/domain"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type SimulationMetrics struct {
	AnnualizedVolatility float64 `json:"annualizedVolatility"`
	MaxDrawdownPct       float64 `json:"maxDrawdownPct"`
}

// CalculateMetrics derives risk figures from a simulation's history:
// annualized stdev of daily price returns and the deepest peak-to-trough
// decline of the accumulated position value. A history too short to
// compute returns yields zero metrics, matching the engine's policy of
// never failing on degenerate input.
func CalculateMetrics(result domain.InvestmentResult) (*SimulationMetrics, error) {
	if len(result.History) < 2 {
		return &SimulationMetrics{}, nil
	}

	returns := dailyReturns(result.History)
	if len(returns) < 2 {
		return &SimulationMetrics{MaxDrawdownPct: maxDrawdownPct(result.History)}, nil
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stdev over %d returns: %w", len(returns), err)
	}

	return &SimulationMetrics{
		AnnualizedVolatility: stdev * math.Sqrt(365),
		MaxDrawdownPct:       maxDrawdownPct(result.History),
	}, nil
}

func dailyReturns(history []domain.HistoryPoint) []float64 {
	returns := []float64{}
	for i := 1; i < len(history); i++ {
		prev := decimal.NewFromFloat(history[i-1].Price)
		if prev.IsZero() {
			continue
		}
		cur := decimal.NewFromFloat(history[i].Price)
		returns = append(returns, cur.Sub(prev).Div(prev).InexactFloat64())
	}
	return returns
}

func maxDrawdownPct(history []domain.HistoryPoint) float64 {
	peak := 0.0
	maxDrawdown := 0.0
	for _, h := range history {
		if h.Value > peak {
			peak = h.Value
		}
		if peak > 0 {
			drawdown := (peak - h.Value) / peak * 100
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return maxDrawdown
}
