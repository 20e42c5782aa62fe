package service

import (
	"bytes"
	"dcasim/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportService_WriteCSV(t *testing.T) {
	handler := NewExportService()

	result := domain.InvestmentResult{
		TotalInvested:          300,
		TotalUnits:             0.0175,
		CurrentValue:           350.5,
		Roi:                    16.8333,
		AveragePrice:           17142.857,
		LumpSumValue:           360,
		InflationAdjustedValue: 340.25,
		Transactions: []domain.Transaction{
			{Date: "2023-01-01", Amount: 100, Price: 16500, Units: 0.00606061},
			{Date: "2023-01-08", Amount: 100, Price: 17000, Units: 0.00588235},
			{Date: "2023-01-15", Amount: 100, Price: 17500, Units: 0.00571429},
		},
	}

	var buf bytes.Buffer
	err := handler.WriteCSV(&buf, domain.AssetBTC, result)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "INVESTMENT SUMMARY", lines[0])
	require.Equal(t, "Metric,Value", lines[1])
	require.Equal(t, "Asset,Bitcoin", lines[2])
	require.Equal(t, "Total Invested (USD),300.00", lines[3])
	require.Equal(t, "Current Value (USD),350.50", lines[4])
	require.Equal(t, "Total ROI (%),16.83%", lines[5])
	require.Equal(t, "Total Units accumulated (BTC),0.01750000", lines[6])

	require.Contains(t, lines, "")
	require.Contains(t, out, "TRANSACTION HISTORY\n")
	require.Contains(t, out, "Date,Invested (USD),Asset Price,Units Bought\n")
	require.Contains(t, out, "2023-01-01,100.00,16500.00,0.00606061\n")
	require.Contains(t, out, "2023-01-15,100.00,17500.00,0.00571429\n")
}

func TestExportService_WriteCSV_NoTransactions(t *testing.T) {
	handler := NewExportService()

	var buf bytes.Buffer
	err := handler.WriteCSV(&buf, domain.AssetSilver, domain.InvestmentResult{})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Asset,Silver\n")
	require.Contains(t, out, "Total Units accumulated (OZ),0.00000000\n")
	require.Contains(t, out, "Total Invested (USD),0.00\n")
	require.Contains(t, out, "Date,Invested (USD),Asset Price,Units Bought\n")
}
