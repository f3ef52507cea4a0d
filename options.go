package suratkit

import (
	"log/slog"
	"net/http"

	"github.com/suratkit/suratkit/assets"
	"github.com/suratkit/suratkit/locale"
)

// composeOptions holds configuration shared by both export paths.
type composeOptions struct {
	table  locale.Table
	logger *slog.Logger
	client *http.Client
}

// defaultOptions returns the default export options.
func defaultOptions() composeOptions {
	return composeOptions{
		table:  locale.Indonesian(),
		logger: slog.Default(),
		client: http.DefaultClient,
	}
}

// clone creates a copy of composeOptions so an in-flight export keeps the
// options it started with.
func (o composeOptions) clone() composeOptions {
	return composeOptions{
		table:  o.table,
		logger: o.logger,
		client: o.client,
	}
}

// resolver builds the asset resolver the export will use.
func (o composeOptions) resolver() *assets.Resolver {
	return assets.NewResolver(
		assets.WithClient(o.client),
		assets.WithLogger(o.logger),
	)
}

// ExportOption configures a Composer's exports.
type ExportOption func(*composeOptions)

// WithLogger sets the logger used for export diagnostics.
func WithLogger(l *slog.Logger) ExportOption {
	return func(o *composeOptions) {
		o.logger = l
	}
}

// WithHTTPClient sets the HTTP client used to fetch remote images during
// export. Fetch timeouts follow the client's configuration.
func WithHTTPClient(c *http.Client) ExportOption {
	return func(o *composeOptions) {
		o.client = c
	}
}
