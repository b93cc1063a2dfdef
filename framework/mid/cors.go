package mid

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/framework/web"
)

// CORSConfig configures CORS behavior.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposeHeaders  []string
	MaxAgeSeconds  int
}

// CORS sets the CORS response headers and answers preflight requests with 204.
// Preflights only reach the middleware on paths with an OPTIONS route.
func CORS(cfg CORSConfig) web.Middleware {
	allowOrigins := strings.Join(defaultIfEmpty(cfg.AllowedOrigins, []string{"*"}), ", ")
	allowMethods := strings.Join(defaultIfEmpty(cfg.AllowedMethods, []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}), ", ")
	allowHeaders := strings.Join(defaultIfEmpty(cfg.AllowedHeaders, []string{"Content-Type", "Authorization"}), ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")

	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			header := ctx.Writer.Header()
			header.Set("Access-Control-Allow-Origin", allowOrigins)
			header.Set("Access-Control-Allow-Methods", allowMethods)
			header.Set("Access-Control-Allow-Headers", allowHeaders)

			if exposeHeaders != "" {
				header.Set("Access-Control-Expose-Headers", exposeHeaders)
			}

			if cfg.MaxAgeSeconds > 0 {
				header.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAgeSeconds))
			}

			if ctx.Request.Method == http.MethodOptions {
				return web.Respond(ctx, nil, http.StatusNoContent)
			}

			return before(ctx)
		}

		return h
	}

	return f
}

func defaultIfEmpty(in, fallback []string) []string {
	if len(in) == 0 {
		return fallback
	}

	return in
}
