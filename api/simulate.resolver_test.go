package api

import (
	"bytes"
	"context"
	"dcasim/internal/domain"
	"dcasim/internal/logger"
	"dcasim/internal/service"
	"dcasim/internal/util"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPriceService struct {
	series domain.PriceSeries
}

func (s stubPriceService) GetPriceHistory(ctx context.Context, asset domain.Asset) (domain.PriceSeries, error) {
	return s.series, nil
}

func newTestHandler(series domain.PriceSeries) ApiHandler {
	priceService := stubPriceService{series: series}
	return ApiHandler{
		Logger:            logger.New(),
		SimulationService: service.NewSimulationService(priceService),
		PriceService:      priceService,
		ExportService:     service.NewExportService(),
	}
}

func flatDailySeries(days int, price float64) domain.PriceSeries {
	start := util.NewDate(2023, 1, 1)
	out := domain.PriceSeries{}
	for i := 0; i < days; i++ {
		out = append(out, domain.PricePoint{
			Date:  start.AddDate(0, 0, i).UnixMilli(),
			Price: price,
		})
	}
	return out
}

func Test_simulate(t *testing.T) {
	router := newTestHandler(flatDailySeries(22, 20000)).InitializeRouterEngine()

	t.Run("happy path", func(t *testing.T) {
		body := `{
			"asset": "BTC",
			"amount": 100,
			"frequency": "weekly",
			"startDate": "2023-01-01",
			"endDate": "2023-01-22"
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)

		var response SimulateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, domain.AssetBTC, response.Asset)
		require.Equal(t, 4, response.Result.PurchaseCount)
		require.Equal(t, float64(400), response.Result.TotalInvested)
		require.NotNil(t, response.Profile)
	})

	t.Run("restores a simulation from query params", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(
			http.MethodGet,
			"/simulate?asset=BTC&amount=100&frequency=weekly&startDate=2023-01-01&endDate=2023-01-22",
			nil,
		)
		router.ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)

		var response SimulateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 4, response.Result.PurchaseCount)
	})

	t.Run("unknown asset is a 400", func(t *testing.T) {
		body := `{"asset": "DOGE", "amount": 100, "frequency": "daily", "startDate": "2023-01-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		require.Equal(t, 400, w.Code)
		require.Contains(t, w.Body.String(), "unknown asset")
	})

	t.Run("non-positive amount is a 400", func(t *testing.T) {
		body := `{"asset": "BTC", "amount": 0, "frequency": "daily", "startDate": "2023-01-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		require.Equal(t, 400, w.Code)
		require.Contains(t, w.Body.String(), "amount must be positive")
	})

	t.Run("end before start is a 400", func(t *testing.T) {
		body := `{"asset": "BTC", "amount": 100, "frequency": "daily", "startDate": "2023-02-01", "endDate": "2023-01-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		require.Equal(t, 400, w.Code)
	})
}

func Test_compare(t *testing.T) {
	router := newTestHandler(flatDailySeries(10, 100)).InitializeRouterEngine()

	body := `{"amount": 50, "frequency": "daily", "startDate": "2023-01-01", "endDate": "2023-01-10"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/compare", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)

	var response CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Results, 3)
	require.Equal(t, 10, response.Results[domain.AssetBTC].Result.PurchaseCount)
}

func Test_exportCsv(t *testing.T) {
	router := newTestHandler(flatDailySeries(22, 20000)).InitializeRouterEngine()

	body := `{
		"asset": "BTC",
		"amount": 100,
		"frequency": "weekly",
		"startDate": "2023-01-01",
		"endDate": "2023-01-22"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "BTC_dca_report_")
	require.Contains(t, w.Body.String(), "INVESTMENT SUMMARY")
	require.Contains(t, w.Body.String(), "TRANSACTION HISTORY")
	require.Contains(t, w.Body.String(), "Total Invested (USD),400.00")
}
