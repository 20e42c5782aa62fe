package api

import (
	"bytes"
	"dcasim/internal/domain"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) exportCsv(c *gin.Context) {
	requestBody, err := bindSimulateRequest(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	asset, err := domain.NewAsset(requestBody.Asset)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	params, err := investmentParamsFromRequest(*requestBody)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	response, err := m.SimulationService.Simulate(c.Request.Context(), asset, params)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var buf bytes.Buffer
	if err := m.ExportService.WriteCSV(&buf, asset, response.Result); err != nil {
		returnErrorJson(err, c)
		return
	}

	filename := fmt.Sprintf("%s_dca_report_%s.csv", asset, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "text/csv", buf.Bytes())
}
