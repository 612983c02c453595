package client

import (
	"net/http"
	"net/http/httputil"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the hosted Texterify API endpoint, version path
// included. Self-hosted instances point elsewhere via WithBaseURL.
const DefaultBaseURL = "https://app.texterify.com/api/v1/"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a Texterify API client. It is immutable after New and safe
// for concurrent use; every operation issues exactly one HTTP request.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
	log     zerolog.Logger
}

// New constructs a Client authenticating with the given account email
// and API secret. Credentials are not validated locally; wrong ones
// surface as auth failures from the remote service. No network activity
// happens during construction.
func New(authEmail, authSecret string, opts ...Option) *Client {
	env, err := loadEnv()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring malformed environment overrides")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
			"Auth-Email":   authEmail,
			"Auth-Secret":  authSecret,
		},
		http: &http.Client{Timeout: env.HTTPTimeout},
		log:  log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if env.Debug {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	return c
}

// MustNew constructs a Client with panic-on-error semantics (for testing).
func MustNew(authEmail, authSecret string, opts ...Option) *Client {
	return New(authEmail, authSecret, opts...)
}

// --------------------------------------------------------------------
// debugTransport – optional HTTP round-trip logger
// --------------------------------------------------------------------

// debugTransport reads the client's logger at call time so option order
// (WithLogger before or after WithDebugLogging) does not matter.
type debugTransport struct {
	c    *Client
	base http.RoundTripper
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqID := uuid.NewString()

	reqDump, err := httputil.DumpRequestOut(req, true)
	if err == nil {
		dt.c.log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.c.log.Error().Err(err).Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err == nil {
		dt.c.log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}
