package mid

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/errorreporting"
	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/internal"
)

// route is the registered path of the request, as stored by App.Handle.
func route(ctx *gin.Context) string {
	if v, ok := internal.DataFromContext(ctx); ok && v.Route != "" {
		return v.Route
	}

	return ctx.FullPath()
}

// reportServerError sends a failed request to Sentry and Cloud Error Reporting.
func reportServerError(ctx *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelError)
			scope.SetTag("route", route(ctx))
			scope.SetTag("method", ctx.Request.Method)
			hub.CaptureMessage(err.Error())
		})
	}

	errorreporting.ReportRequestError(ctx, err)
}

// Sentry reports requests that failed with a 5xx, or that returned nil after
// being aborted with an error.
func Sentry() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if err := before(ctx); err != nil {
				var webErr *web.Error
				if !errors.As(err, &webErr) || webErr.Status >= http.StatusInternalServerError {
					reportServerError(ctx, err)
				}

				return err
			}

			if ctx.Writer.Status() >= http.StatusBadRequest {
				if lastErr := ctx.Errors.Last(); lastErr != nil {
					reportServerError(ctx, lastErr.Err)
				}
			}

			return nil
		}

		return h
	}

	return f
}
