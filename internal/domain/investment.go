package domain

import (
	"fmt"
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func NewFrequency(s string) (Frequency, error) {
	switch strings.ToLower(s) {
	case "daily":
		return FrequencyDaily, nil
	case "weekly":
		return FrequencyWeekly, nil
	case "monthly":
		return FrequencyMonthly, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// InvestmentParameters describes one periodic investment plan. Amount
// is the fixed contribution per period; InflationRate is percent per
// year and deflates the final value to start-date purchasing power.
type InvestmentParameters struct {
	Amount        float64
	Frequency     Frequency
	StartDate     time.Time
	EndDate       time.Time
	InflationRate float64
}

// Transaction records one executed purchase. Date is the calendar day
// in yyyy-mm-dd form.
type Transaction struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
	Units  float64 `json:"units"`
}

// HistoryPoint is a running snapshot emitted per price sample in
// range, whether or not a purchase happened that day.
type HistoryPoint struct {
	Date     string  `json:"date"`
	Invested float64 `json:"invested"`
	Value    float64 `json:"value"`
	Price    float64 `json:"price"`
}

type InvestmentResult struct {
	TotalInvested          float64        `json:"totalInvested"`
	TotalUnits             float64        `json:"totalUnits"`
	CurrentPrice           float64        `json:"currentPrice"`
	CurrentValue           float64        `json:"currentValue"`
	Roi                    float64        `json:"roi"`
	AveragePrice           float64        `json:"averagePrice"`
	BestPrice              float64        `json:"bestPrice"`
	WorstPrice             float64        `json:"worstPrice"`
	PurchaseCount          int            `json:"purchaseCount"`
	LumpSumUnits           float64        `json:"lumpSumUnits"`
	LumpSumValue           float64        `json:"lumpSumValue"`
	InflationAdjustedValue float64        `json:"inflationAdjustedValue"`
	History                []HistoryPoint `json:"history"`
	Transactions           []Transaction  `json:"transactions"`
}
