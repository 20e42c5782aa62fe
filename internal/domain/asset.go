package domain

import "fmt"

type Asset string

const (
	AssetBTC    Asset = "BTC"
	AssetGold   Asset = "Gold"
	AssetSilver Asset = "Silver"
)

func AllAssets() []Asset {
	return []Asset{AssetBTC, AssetGold, AssetSilver}
}

func NewAsset(s string) (Asset, error) {
	for _, a := range AllAssets() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown asset %q", s)
}

// AssetConfig holds the per-provider identifiers for an asset. An
// empty field means the provider cannot serve the asset.
type AssetConfig struct {
	CoinGeckoID   string
	BinanceSymbol string
	YahooSymbol   string
	Label         string
	Unit          string
}

var assetConfigs = map[Asset]AssetConfig{
	AssetBTC: {
		CoinGeckoID:   "bitcoin",
		BinanceSymbol: "BTCUSDT",
		YahooSymbol:   "BTC-USD",
		Label:         "Bitcoin",
		Unit:          "BTC",
	},
	AssetGold: {
		CoinGeckoID:   "pax-gold",
		BinanceSymbol: "PAXGUSDT",
		YahooSymbol:   "GC=F",
		Label:         "Gold",
		Unit:          "OZ",
	},
	AssetSilver: {
		CoinGeckoID:   "kinesis-silver",
		BinanceSymbol: "",
		YahooSymbol:   "SI=F",
		Label:         "Silver",
		Unit:          "OZ",
	},
}

func (a Asset) Config() AssetConfig {
	return assetConfigs[a]
}
