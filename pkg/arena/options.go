package arena

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds each request when no custom HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Option configures a Client during construction.
type Option func(*options)

// options holds the construction-time configuration for a Client.
type options struct {
	roundID     string
	challengeID string
	httpClient  *http.Client
	timeout     time.Duration
	now         func() time.Time
}

func defaultOptions() *options {
	return &options{
		timeout: DefaultTimeout,
		now:     time.Now,
	}
}

// WithRoundID binds the client to an explicit round. The round is trusted as
// given: the client synthesizes an always-active round and does not contact
// the server during construction.
func WithRoundID(id string) Option {
	return func(o *options) {
		o.roundID = id
	}
}

// WithChallengeID has the client fetch the challenge during construction and
// bind the round whose interval contains the current instant. Ignored when
// WithRoundID is also given.
func WithChallengeID(id string) Option {
	return func(o *options) {
		o.challengeID = id
	}
}

// WithHTTPClient sets the underlying HTTP client. Overrides WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// withNow overrides the clock used for round resolution. Kept unexported;
// only tests need a deterministic clock.
func withNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
