// dcasim CLI - run DCA simulations and export reports from the
// terminal using the same services the API serves.
package main

import (
	"context"
	"dcasim/api"
	"dcasim/cmd"
	"dcasim/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagAsset     string
	flagAmount    float64
	flagFrequency string
	flagStartDate string
	flagEndDate   string
	flagInflation float64
	flagOutFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dcasim",
	Short: "dollar-cost-averaging simulations over historical prices",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation and print the result as JSON",
	RunE: func(c *cobra.Command, args []string) error {
		handler, asset, params, err := setup()
		if err != nil {
			return err
		}

		response, err := handler.SimulationService.Simulate(context.Background(), asset, params)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run a simulation and write the CSV report",
	RunE: func(c *cobra.Command, args []string) error {
		handler, asset, params, err := setup()
		if err != nil {
			return err
		}

		response, err := handler.SimulationService.Simulate(context.Background(), asset, params)
		if err != nil {
			return err
		}

		out := os.Stdout
		if flagOutFile != "" {
			f, err := os.Create(flagOutFile)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", flagOutFile, err)
			}
			defer f.Close()
			out = f
		}

		return handler.ExportService.WriteCSV(out, asset, response.Result)
	},
}

func setup() (*api.ApiHandler, domain.Asset, domain.InvestmentParameters, error) {
	handler, _, err := cmd.InitializeDependencies()
	if err != nil {
		return nil, "", domain.InvestmentParameters{}, err
	}

	asset, err := domain.NewAsset(flagAsset)
	if err != nil {
		return nil, "", domain.InvestmentParameters{}, err
	}

	frequency, err := domain.NewFrequency(flagFrequency)
	if err != nil {
		return nil, "", domain.InvestmentParameters{}, err
	}

	startDate, err := time.Parse("2006-01-02", flagStartDate)
	if err != nil {
		return nil, "", domain.InvestmentParameters{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate := time.Now().UTC()
	if flagEndDate != "" {
		endDate, err = time.Parse("2006-01-02", flagEndDate)
		if err != nil {
			return nil, "", domain.InvestmentParameters{}, fmt.Errorf("failed to parse end date: %w", err)
		}
	}

	if flagAmount <= 0 {
		return nil, "", domain.InvestmentParameters{}, fmt.Errorf("amount must be positive, got %f", flagAmount)
	}

	return handler, asset, domain.InvestmentParameters{
		Amount:        flagAmount,
		Frequency:     frequency,
		StartDate:     startDate,
		EndDate:       endDate,
		InflationRate: flagInflation,
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{simulateCmd, exportCmd} {
		c.Flags().StringVar(&flagAsset, "asset", "BTC", "asset to simulate (BTC, Gold, Silver)")
		c.Flags().Float64Var(&flagAmount, "amount", 100, "contribution per period (USD)")
		c.Flags().StringVar(&flagFrequency, "frequency", "weekly", "purchase frequency (daily, weekly, monthly)")
		c.Flags().StringVar(&flagStartDate, "start", "2023-01-01", "start date (yyyy-mm-dd)")
		c.Flags().StringVar(&flagEndDate, "end", "", "end date (yyyy-mm-dd), defaults to today")
		c.Flags().Float64Var(&flagInflation, "inflation", 0, "annual inflation rate (percent)")
	}
	exportCmd.Flags().StringVar(&flagOutFile, "out", "", "output file, defaults to stdout")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
}
