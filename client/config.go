package client

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envOverrides are ambient tunables taken from environment variables
// with the prefix "TEXTERIFY_". Example: TEXTERIFY_DEBUG=true
// TEXTERIFY_HTTP_TIMEOUT=10s . Credentials are never read from the
// environment; they are constructor arguments only.
type envOverrides struct {
	Debug       bool          `envconfig:"DEBUG"        default:"false"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// loadEnv populates envOverrides from environment variables (prefix
// TEXTERIFY_). The bare DEBUG=true also enables debug logging.
// Malformed values fall back to the defaults; construction never fails
// locally.
func loadEnv() (envOverrides, error) {
	var e envOverrides
	err := envconfig.Process("TEXTERIFY", &e)
	if err != nil {
		e = envOverrides{HTTPTimeout: 30 * time.Second}
	}
	if os.Getenv("DEBUG") == "true" {
		e.Debug = true
	}
	return e, err
}
