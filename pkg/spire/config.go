package spire

import "time"

// Config carries everything needed to build a client for one Spire company
// database. Credentials and endpoint state are fixed at construction time and
// treated as immutable afterwards.
type Config struct {
	// Host is the Spire server, e.g. "black-disk-5630.spirelan.com:10880".
	// spireclient.New adds "https://" when no scheme is present and trims a
	// trailing slash.
	Host string

	// Company selects the company database; it becomes part of the base URL
	// ("<host>/api/v2/companies/<company>").
	Company string

	// Username and Password authenticate every request via HTTP basic auth.
	Username string
	Password string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds each round trip. Zero means the HTTP layer default;
	// per-call deadlines should be set through context.
	HTTPTimeout time.Duration

	// RetryMax enables transient-failure retries in the transport when
	// positive. The default of zero performs no retries: failures surface
	// directly to the caller.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is set.
	Debug  bool
	Logger Logger

	// Cache configures the optional read-through entity cache consulted by
	// single-record lookups. Nil disables caching entirely; the transport
	// itself never caches.
	Cache *CacheConfig
}
