package cmd

import (
	"dcasim/api"
	"dcasim/internal/logger"
	"dcasim/internal/repository"
	"dcasim/internal/service"
	"dcasim/internal/util"
	"fmt"

	"github.com/joho/godotenv"
)

func InitializeDependencies() (*api.ApiHandler, util.Config, error) {
	// missing .env is fine - config falls back to defaults
	_ = godotenv.Load()

	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, util.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	binanceRepository := repository.NewBinanceRepository(cfg.BinanceBaseUrl)
	coinGeckoRepository := repository.NewCoinGeckoRepository(cfg.CoinGeckoBaseUrl)
	yahooRepository := repository.NewYahooRepository()
	syntheticRepository := repository.NewSyntheticRepository()

	priceService := service.NewPriceService(
		binanceRepository,
		coinGeckoRepository,
		yahooRepository,
		syntheticRepository,
		cfg.PriceCacheTTL,
	)
	simulationService := service.NewSimulationService(priceService)
	exportService := service.NewExportService()

	return &api.ApiHandler{
		Logger:            logger.New(),
		SimulationService: simulationService,
		PriceService:      priceService,
		ExportService:     exportService,
	}, *cfg, nil
}
