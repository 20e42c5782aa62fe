package util

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ApiPort          int
	BinanceBaseUrl   string
	CoinGeckoBaseUrl string
	PriceCacheTTL    time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		ApiPort:          3009,
		BinanceBaseUrl:   "https://api.binance.com",
		CoinGeckoBaseUrl: "https://api.coingecko.com",
		PriceCacheTTL:    time.Hour,
	}

	if port := os.Getenv("DCASIM_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid DCASIM_PORT %q: %w", port, err)
		}
		cfg.ApiPort = p
	}
	if url := os.Getenv("DCASIM_BINANCE_URL"); url != "" {
		cfg.BinanceBaseUrl = url
	}
	if url := os.Getenv("DCASIM_COINGECKO_URL"); url != "" {
		cfg.CoinGeckoBaseUrl = url
	}
	if ttl := os.Getenv("DCASIM_PRICE_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid DCASIM_PRICE_CACHE_TTL %q: %w", ttl, err)
		}
		cfg.PriceCacheTTL = d
	}

	return cfg, nil
}
