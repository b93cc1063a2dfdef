package mid

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/errorreporting"
	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/internal"
	"github.com/doitintl/product-catalog/logger"
)

// Panics turns a panicking handler into an error for the route it was
// registered on, and reports the stack.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			defer func() {
				r := recover()
				if r == nil {
					return
				}

				stack := debug.Stack()
				err = fmt.Errorf("panic in %s %s: %v", ctx.Request.Method, v.Route, r)
				log.Errorf("%s: %s\n%s", v.TraceID, err, stack)

				if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
					hub.WithScope(func(scope *sentry.Scope) {
						scope.SetTag("route", v.Route)
						scope.SetTag("trace", v.TraceID)
						hub.Recover(err)
						sentry.Flush(time.Second * 5)
					})
				}

				errorreporting.Report(err, &errorreporting.Metadata{
					Req:   ctx.Request,
					Stack: stack,
				})
			}()

			return after(ctx)
		}

		return h
	}

	return f
}
