package mid

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/metrics"
)

// Metrics records a request count and latency observation per route.
func Metrics(m *metrics.HTTPMetrics) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			start := time.Now()

			err := before(ctx)

			status := ctx.Writer.Status()
			if !ctx.Writer.Written() {
				status = metrics.StatusUnanswered
			}

			m.Observe(ctx.Request.Method, ctx.FullPath(), status, time.Since(start))

			return err
		}

		return h
	}

	return f
}
