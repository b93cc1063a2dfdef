// Package errorreporting forwards server-side failures to Google Cloud Error Reporting.
package errorreporting

import (
	"context"
	"log"
	"net/http"

	"cloud.google.com/go/errorreporting"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/common"
)

type reporter interface {
	Report(e errorreporting.Entry)
	Close() error
}

// erc stays nil until Init succeeds, which turns Report into a no-op.
var erc reporter

type Metadata struct {
	Req   *http.Request
	User  string
	Stack []byte
}

// Init starts the Error Reporting client for the running service. Localhost
// runs and runs without a Google Cloud project keep reporting disabled.
func Init(ctx context.Context, service string) error {
	if common.IsLocalhost || common.ProjectID == "" {
		return nil
	}

	c, err := errorreporting.NewClient(ctx, common.ProjectID, errorreporting.Config{
		ServiceName:    service,
		ServiceVersion: common.ServiceVersion,
		OnError: func(err error) {
			log.Printf("errorreporting: could not report error: %v", err)
		},
	})
	if err != nil {
		return err
	}

	erc = c

	return nil
}

// Close flushes pending reports.
func Close() error {
	if erc == nil {
		return nil
	}

	return erc.Close()
}

func Report(err error, md *Metadata) {
	if err == nil || erc == nil {
		return
	}

	e := errorreporting.Entry{
		Error: err,
	}

	if md != nil {
		e.User = md.User
		e.Req = md.Req
		e.Stack = md.Stack
	}

	erc.Report(e)
}

func ReportRequestError(ctx *gin.Context, err error) {
	Report(err, &Metadata{
		Req: ctx.Request,
	})
}
