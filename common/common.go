package common

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the Google Cloud project logs are shipped to, when cloud logging is on.
	ProjectID string

	// ServiceName identifies the running service in logs and traces.
	ServiceName string

	// ServiceVersion is the deployed revision of the running service.
	ServiceVersion string

	// Env is the deployment environment name.
	Env string

	// Production flag indicating if app is running in the production cluster
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	ServiceName = GetEnv("SERVICE_NAME", "product-catalog")
	ServiceVersion = GetEnv("SERVICE_VERSION", "localhost")

	IsLocalhost = gin.Mode() != gin.ReleaseMode

	Env = GetEnv("ENVIRONMENT", string(EnvDev))
	Production = Env == string(EnvProd)
}

func init() {
	initEnvVariables()
}

// GetEnv returns the value of the environment variable key, or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// GetEnvBool parses key as a boolean. Unparsable values fall back with a log line.
func GetEnvBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("invalid boolean %s=%q, defaulting to %t: %v", key, raw, fallback, err)
		return fallback
	}

	return v
}

// GetEnvDuration parses key as a time.Duration. Unparsable values fall back with a log line.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid duration %s=%q, defaulting to %s: %v", key, raw, fallback, err)
		return fallback
	}

	return d
}
