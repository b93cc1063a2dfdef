package logger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/doitintl/product-catalog/common"
)

const (
	// CtxLoggerKey is how request values or stored/retrieved.
	CtxLoggerKey = "app-logger"

	// CtxDetailedLoggerKey is how request values or stored/retrieved.
	CtxDetailedLoggerKey = "app-detailed-logger"

	// requestLogID is the name of the log holding one summary entry per request.
	requestLogID = "request_log"

	// appLogID is the name of the log holding the entries written while serving a request.
	appLogID = "app_log"

	// labels keys for monitored resource definition
	projectIDField = "project_id"

	resourceType = "global"

	gcpLogging = "GCP_LOGGING"

	traceHeader = "X-Cloud-Trace-Context"
)

var (
	requestLogger *logging.Logger
	appLogger     *logging.Logger
	resource      *monitoredres.MonitoredResource
	cloudLogging  bool
)

type Provider func(ctx context.Context) ILogger

// Logging owns the optional Cloud Logging client shared by all request loggers.
type Logging struct {
	client *logging.Client
}

// NewLogging initializes the cloud logging sinks when GCP_LOGGING is enabled.
// Without it, loggers only write to the process output.
func NewLogging(ctx context.Context) (*Logging, error) {
	cloudLogging = common.GetEnvBool(gcpLogging, false)
	if !cloudLogging {
		return &Logging{}, nil
	}

	if common.ProjectID == "" {
		return nil, fmt.Errorf("%s is enabled but GOOGLE_CLOUD_PROJECT is not set", gcpLogging)
	}

	client, err := logging.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, err
	}

	commonLabels := logging.CommonLabels(map[string]string{
		common.LabelKeyService.String(): common.ServiceName,
		common.LabelKeyVersion.String(): common.ServiceVersion,
		common.LabelKeyEnv.String():     common.GetEnvironmentLabel(),
	})

	requestLogger = client.Logger(requestLogID, commonLabels)
	appLogger = client.Logger(appLogID, commonLabels)

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			projectIDField: common.ProjectID,
		},
		Type: resourceType,
	}

	return &Logging{client: client}, nil
}

// Close flushes buffered cloud entries.
func (l *Logging) Close() error {
	if l == nil || l.client == nil {
		return nil
	}

	return l.client.Close()
}

// NewLogger sets gin.Context with a new logger. An incoming X-Cloud-Trace-Context
// header is reused as the trace id so entries correlate with the caller.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()
	d := newDetailedLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get(traceHeader)
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(l.started, t)
				d.trace = l.trace
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)
	ctx.Set(CtxDetailedLoggerKey, d)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	if common.ProjectID == "" {
		return fmt.Sprintf("%d%s", started.UnixNano(), id)
	}

	return fmt.Sprintf("projects/%s/traces/%d%s", common.ProjectID, started.UnixNano(), id)
}
