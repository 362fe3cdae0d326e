package appconfig

import (
	"time"

	"mergington.edu/activities-backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:8000"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// StaticDir is the directory the bundled front-end is served from under /static.
	StaticDir string `required:"true" split_words:"true" default:"static"`

	// EnforceCapacity rejects signups to an activity whose roster already reached
	// max_participants. Off by default: the registry seeds generous capacities and
	// the school prefers handling overflow by hand over hard rejections.
	EnforceCapacity bool `split_words:"true" default:"false"`

	// EventBusEnabled to indicate whether to publish roster events to NATS.
	// The server runs fully standalone when disabled.
	EventBusEnabled bool `split_words:"true" default:"false"`

	// NatsURL is the URL of the NATS server. See https://pkg.go.dev/github.com/nats-io/nats.go#Connect
	// for more information on how to construct a NATS URL. Only used when EventBusEnabled.
	NatsURL string `split_words:"true" default:"nats://127.0.0.1:4222"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// WorkerInterval describes the interval in-between occupancy refresh batches.
	WorkerInterval time.Duration `required:"true" split_words:"true" default:"5m"`

	// WorkerEnabled is a flag to indicate whether to enable the occupancy worker.
	WorkerEnabled bool `split_words:"true" default:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
