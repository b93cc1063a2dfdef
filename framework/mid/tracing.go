package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/logger"
)

const tracerName = "github.com/doitintl/product-catalog/framework/mid"

// Tracing opens a server span named segmentName around every request it wraps
// and closes it once the response is written. Incoming trace context is
// continued when the caller sent one.
func Tracing(tp trace.TracerProvider, propagator propagation.TextMapPropagator, segmentName string) web.Middleware {
	tracer := tp.Tracer(tracerName)

	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			parent := propagator.Extract(ctx.Request.Context(), propagation.HeaderCarrier(ctx.Request.Header))

			spanCtx, span := tracer.Start(parent, segmentName,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", ctx.Request.Method),
					attribute.String("http.route", ctx.FullPath()),
					attribute.String("http.target", ctx.Request.URL.Path),
				),
			)
			defer span.End()

			ctx.Request = ctx.Request.WithContext(spanCtx)

			logger.FromContext(ctx).SetLabel("trace_id", span.SpanContext().TraceID().String())

			err := before(ctx)

			status := ctx.Writer.Status()
			span.SetAttributes(attribute.Int("http.status_code", status))

			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			case status >= http.StatusInternalServerError:
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			return err
		}

		return h
	}

	return f
}
