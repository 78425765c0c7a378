package middleware

import (
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccessLog writes one line per request to w, tagged with the request id.
// Health probes are skipped.
func AccessLog(w io.Writer) gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithWriter(w),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath([]string{"/healthz"}),
		ginlog.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().Str("request_id", c.GetString("request_id")).Logger()
		}),
		ginlog.WithClientErrorLevel(zerolog.WarnLevel),
		ginlog.WithServerErrorLevel(zerolog.ErrorLevel),
	)
}
