package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Ответы 4xx являются ожидаемым исходом и пишутся на уровне Info,
// 5xx пишутся как ошибки вместе с приватными ошибками запроса.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithField("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}
		if actor, ok := ActorFromContext(c); ok {
			fields["actorID"] = actor.ID
		}
		reqLog := entry.WithFields(fields)

		if c.Writer.Status() >= http.StatusInternalServerError {
			if len(c.Errors) > 0 {
				reqLog = reqLog.WithField("errors", c.Errors.String())
			}
			reqLog.Error("request failed")
			return
		}
		reqLog.Info("request")
	}
}
