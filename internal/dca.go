package internal

import (
	"dcasim/internal/domain"
	"dcasim/internal/util"
	"math"
	"sort"
	"time"
)

// CalculateDCA runs a dollar-cost-averaging simulation over a price
// series. The input series need not be sorted, deduplicated, or
// pre-filtered; degenerate inputs (empty series, zero-length range)
// produce a zero-valued result rather than an error.
//
// A purchase cursor walks alongside the price samples: the contribution
// executes on the first sample on or after the due date, and the cursor
// then advances by exactly one period. Gaps in the data longer than one
// period skip the missed contributions rather than backfilling them.
func CalculateDCA(prices domain.PriceSeries, params domain.InvestmentParameters) domain.InvestmentResult {
	start := util.StartOfDay(params.StartDate)
	end := util.StartOfDay(params.EndDate)

	relevant := make(domain.PriceSeries, 0, len(prices))
	for _, p := range prices {
		if p.Date >= start.UnixMilli() && p.Date <= end.UnixMilli() {
			relevant = append(relevant, p)
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Date < relevant[j].Date
	})

	var (
		history      = []domain.HistoryPoint{}
		transactions = []domain.Transaction{}

		nextDue             = start
		accumulatedUnits    float64
		accumulatedInvested float64
	)

	for _, point := range relevant {
		day := point.Day()
		if !day.Before(nextDue) && point.Price > 0 {
			units := params.Amount / point.Price
			accumulatedUnits += units
			accumulatedInvested += params.Amount
			transactions = append(transactions, domain.Transaction{
				Date:   day.Format(time.DateOnly),
				Amount: params.Amount,
				Price:  point.Price,
				Units:  units,
			})
			nextDue = advanceDueDate(nextDue, params.Frequency)
		}

		history = append(history, domain.HistoryPoint{
			Date:     day.Format(time.DateOnly),
			Invested: accumulatedInvested,
			Value:    accumulatedUnits * point.Price,
			Price:    point.Price,
		})
	}

	currentPrice := prices.LastPrice()
	currentValue := accumulatedUnits * currentPrice

	roi := 0.0
	if accumulatedInvested > 0 {
		roi = (currentValue - accumulatedInvested) / accumulatedInvested * 100
	}

	averagePrice := 0.0
	if accumulatedUnits > 0 {
		averagePrice = accumulatedInvested / accumulatedUnits
	}

	bestPrice, worstPrice := 0.0, 0.0
	for i, t := range transactions {
		if i == 0 || t.Price < bestPrice {
			bestPrice = t.Price
		}
		if i == 0 || t.Price > worstPrice {
			worstPrice = t.Price
		}
	}

	lumpSumUnits, lumpSumValue := 0.0, 0.0
	if len(relevant) > 0 && relevant[0].Price > 0 {
		lumpSumUnits = accumulatedInvested / relevant[0].Price
		lumpSumValue = lumpSumUnits * currentPrice
	}

	inflationAdjustedValue := currentValue
	if params.InflationRate != 0 {
		years := end.Sub(start).Hours() / 24 / 365.25
		// rates at or below -100% make the deflator zero or NaN
		deflator := math.Pow(1+params.InflationRate/100, years)
		if deflator > 0 && !math.IsInf(deflator, 1) {
			inflationAdjustedValue = currentValue / deflator
		} else {
			inflationAdjustedValue = 0
		}
	}

	return domain.InvestmentResult{
		TotalInvested:          accumulatedInvested,
		TotalUnits:             accumulatedUnits,
		CurrentPrice:           currentPrice,
		CurrentValue:           currentValue,
		Roi:                    roi,
		AveragePrice:           averagePrice,
		BestPrice:              bestPrice,
		WorstPrice:             worstPrice,
		PurchaseCount:          len(transactions),
		LumpSumUnits:           lumpSumUnits,
		LumpSumValue:           lumpSumValue,
		InflationAdjustedValue: inflationAdjustedValue,
		History:                history,
		Transactions:           transactions,
	}
}

// advanceDueDate moves the purchase cursor forward one period. Monthly
// advancement clamps to month end, so a cursor on Jan 31 lands on the
// last day of February and stays on the 28th/29th thereafter.
func advanceDueDate(due time.Time, frequency domain.Frequency) time.Time {
	switch frequency {
	case domain.FrequencyDaily:
		return due.AddDate(0, 0, 1)
	case domain.FrequencyWeekly:
		return due.AddDate(0, 0, 7)
	case domain.FrequencyMonthly:
		return util.AddMonthClamped(due)
	}
	return due.AddDate(0, 0, 1)
}
