package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Config holds router dependencies.
type Config struct {
	BaseURL string
	Store   *Store
	Logger  logrus.FieldLogger
}

// NewRouter builds the engine with every controller registered under
// BaseURL + "/v1".
func NewRouter(cfg Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Logger))

	v1 := router.Group(cfg.BaseURL + "/v1")
	for _, c := range []Controller{
		NewGridController(cfg.Store),
		NewSessionController(cfg.Store),
	} {
		c.Register(v1)
	}

	return router
}

// requestLogger logs one line per request; failed requests carry the
// errors recorded by the handler.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start),
		})
		if len(ctx.Errors) > 0 {
			entry.WithError(ctx.Errors.Last()).Warn("request failed")
			return
		}
		entry.Info("request handled")
	}
}
