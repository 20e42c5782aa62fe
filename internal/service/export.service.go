package service

import (
	"dcasim/internal/domain"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// ExportService renders a simulation result as CSV: a summary block of
// metric,value rows followed by the transaction history.
type ExportService interface {
	WriteCSV(w io.Writer, asset domain.Asset, result domain.InvestmentResult) error
}

func NewExportService() ExportService {
	return &exportServiceHandler{}
}

type exportServiceHandler struct{}

type transactionCsvRow struct {
	Date     string `csv:"Date"`
	Invested string `csv:"Invested (USD)"`
	Price    string `csv:"Asset Price"`
	Units    string `csv:"Units Bought"`
}

func (h exportServiceHandler) WriteCSV(w io.Writer, asset domain.Asset, result domain.InvestmentResult) error {
	cfg := asset.Config()
	summaryRows := [][2]string{
		{"Metric", "Value"},
		{"Asset", cfg.Label},
		{"Total Invested (USD)", money(result.TotalInvested)},
		{"Current Value (USD)", money(result.CurrentValue)},
		{"Total ROI (%)", money(result.Roi) + "%"},
		{fmt.Sprintf("Total Units accumulated (%s)", cfg.Unit), units(result.TotalUnits)},
		{"Average Purchase Price", money(result.AveragePrice)},
		{"Lump Sum Value (USD)", money(result.LumpSumValue)},
		{"Inflation Adjusted Value (USD)", money(result.InflationAdjustedValue)},
	}

	if _, err := fmt.Fprintf(w, "INVESTMENT SUMMARY\n"); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, row := range summaryRows {
		if _, err := fmt.Fprintf(w, "%s,%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\nTRANSACTION HISTORY\n"); err != nil {
		return fmt.Errorf("failed to write transaction header: %w", err)
	}

	rows := make([]transactionCsvRow, 0, len(result.Transactions))
	for _, t := range result.Transactions {
		rows = append(rows, transactionCsvRow{
			Date:     t.Date,
			Invested: money(t.Amount),
			Price:    money(t.Price),
			Units:    units(t.Units),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write transactions: %w", err)
	}

	return nil
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func units(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(8)
}
