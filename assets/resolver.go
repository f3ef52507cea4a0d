package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the number of parallel retrievals in
// ResolveAll. Image counts per document are small; this keeps a document
// full of remote references from opening a connection per image at once.
const maxConcurrentFetches = 4

// Resolver turns image references into raw bytes.
type Resolver struct {
	client *http.Client
	logger *slog.Logger
}

// Option configures the resolver.
type Option func(*Resolver)

// WithClient sets the HTTP client used for fetchable references. Timeouts
// are the client's concern; the default client's defaults apply otherwise.
func WithClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.client = c
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		client: http.DefaultClient,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve decodes or fetches ref and returns its raw bytes.
//
// Recognized reference forms:
//   - data URI ("data:image/png;base64,...."): decoded directly
//   - http:// or https:// URL: fetched, body returned as-is
//   - anything else: treated as a bare base64 payload
//
// Failures are reported as *FetchError or *DecodeError.
func (r *Resolver) Resolve(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &DecodeError{Reason: "empty reference"}
	}

	switch {
	case strings.HasPrefix(ref, "data:"):
		return decodeDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return r.fetch(ctx, ref)
	default:
		data, err := base64.StdEncoding.DecodeString(ref)
		if err != nil {
			return nil, &DecodeError{Reason: "not a URL, data URI, or base64 payload", Err: err}
		}
		return data, nil
	}
}

// MediaType returns the declared media type of a data URI reference, or
// "" when the reference carries none.
func MediaType(ref string) string {
	if !strings.HasPrefix(ref, "data:") {
		return ""
	}
	meta, _, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return ""
	}
	meta = strings.TrimSuffix(meta, ";base64")
	return meta
}

// decodeDataURI decodes the payload of a data URI.
func decodeDataURI(ref string) ([]byte, error) {
	meta, payload, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return nil, &DecodeError{Reason: "data URI has no payload separator"}
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, &DecodeError{Reason: "invalid base64 in data URI", Err: err}
		}
		return data, nil
	}

	// Plain (percent-encoded) data URIs are legal but never produced by
	// the authoring flow; accept the payload verbatim.
	return []byte(payload), nil
}

// fetch retrieves a URL reference.
func (r *Resolver) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("status %s", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return data, nil
}

// Result is the outcome of resolving one reference.
type Result struct {
	Data []byte
	Err  error
}

// ResolveAll resolves every distinct reference concurrently and returns
// the outcomes keyed by reference. Per-reference failures are recorded in
// the map, not returned: callers apply their own per-image policy.
// Document assembly stays ordered by the source sequence regardless of
// completion order, because results are looked up by reference.
func (r *Resolver) ResolveAll(ctx context.Context, refs []string) map[string]Result {
	results := make(map[string]Result, len(refs))

	seen := make(map[string]bool, len(refs))
	var distinct []string
	for _, ref := range refs {
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		distinct = append(distinct, ref)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for _, ref := range distinct {
		ref := ref
		g.Go(func() error {
			data, err := r.Resolve(ctx, ref)
			if err != nil {
				r.logger.Warn("asset resolution failed",
					slog.String("ref", truncateRef(ref)),
					slog.Any("error", err))
			}
			mu.Lock()
			results[ref] = Result{Data: data, Err: err}
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return results
}

// truncateRef shortens long references (embedded base64 data) for logs.
func truncateRef(ref string) string {
	const max = 96
	if len(ref) <= max {
		return ref
	}
	return ref[:max] + "..."
}
