package api

import (
	"dcasim/internal/logger"
	"dcasim/internal/service"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Logger            *zap.SugaredLogger
	SimulationService service.SimulationService
	PriceService      service.PriceService
	ExportService     service.ExportService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to dcasim"})
	})
	// GET accepted too so a simulation can be restored from a link
	router.POST("/simulate", m.simulate)
	router.GET("/simulate", m.simulate)
	router.POST("/compare", m.compare)
	router.GET("/priceHistory", m.priceHistory)
	router.POST("/export", m.exportCsv)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.NewString()
	log := m.Logger.With("requestID", requestID, "route", ctx.Request.URL.Path)
	ctx.Set("requestID", requestID)
	ctx.Request = ctx.Request.WithContext(
		logger.AddToContext(ctx.Request.Context(), log),
	)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request complete",
		"method", ctx.Request.Method,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
