package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/internal"
)

func setStatus(ctx *gin.Context, statusCode int) {
	if v, ok := internal.DataFromContext(ctx); ok {
		v.StatusCode = statusCode
	}
}

// Respond converts a Go value to JSON and sends it to the client with the corresponded status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	setStatus(ctx, statusCode)

	// If there is nothing to marshal then set status code and return.
	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		ctx.Writer.WriteHeaderNow()

		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondHTML renders the named template loaded into the engine.
func RespondHTML(ctx *gin.Context, name string, data interface{}, statusCode int) error {
	setStatus(ctx, statusCode)

	ctx.HTML(statusCode, name, data)

	// gin records render failures on the context instead of returning them.
	if err := ctx.Errors.Last(); err != nil && err.IsType(gin.ErrorTypePrivate) {
		return err.Err
	}

	return nil
}

// Redirect sends the client to location with a 302.
func Redirect(ctx *gin.Context, location string) error {
	setStatus(ctx, http.StatusFound)

	ctx.Redirect(http.StatusFound, location)

	// A redirect answering a POST carries no body, so the header is flushed here.
	ctx.Writer.WriteHeaderNow()

	return nil
}

// RespondError sends an error response back to the client.
func RespondError(ctx *gin.Context, err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		var body interface{} = ErrorResponse{
			Error: webErr.Err.Error(),
		}
		if webErr.Body != nil {
			body = webErr.Body
		}

		return Respond(ctx, body, webErr.Status)
	}

	errResponse := ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	}

	return Respond(ctx, errResponse, http.StatusInternalServerError)
}
