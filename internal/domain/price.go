package domain

import "time"

// PricePoint is one observed market price sample. Date is epoch
// milliseconds as returned by the upstream providers; the engine
// normalizes it to calendar days.
type PricePoint struct {
	Date  int64   `json:"date"`
	Price float64 `json:"price"`
}

type PriceSeries []PricePoint

// Day returns the sample's calendar day in UTC, time-of-day stripped.
func (p PricePoint) Day() time.Time {
	t := time.UnixMilli(p.Date).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LastPrice returns the price of the last sample as received, or 0 for
// an empty series. This models "latest known market price", which may
// sit outside a simulated window whose end date is in the past.
func (s PriceSeries) LastPrice() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Price
}
