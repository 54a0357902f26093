package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/theoremus-urban-solutions/wmr-route-finder/config"
	"github.com/theoremus-urban-solutions/wmr-route-finder/network"
)

// ErrLoad marks every loader failure.
var ErrLoad = errors.New("network data could not be loaded")

// Dataset is the raw input of network.Build.
type Dataset struct {
	Records  []network.Record
	StepFree network.StationSet
}

// Build links the dataset into a network.
func (d *Dataset) Build(logger hclog.Logger) *network.Network {
	return network.Build(d.Records, d.StepFree, network.WithLogger(logger))
}

// Loader reads datasets from files or URLs.
type Loader struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the loader's logger.
func WithLogger(l hclog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithHTTPClient replaces the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(ld *Loader) {
		if c != nil {
			ld.httpClient = c
		}
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the dataset described by cfg.
func (l *Loader) Load(ctx context.Context, cfg config.NetworkConfig) (*Dataset, error) {
	switch cfg.Source {
	case config.SourceGTFS:
		return l.LoadGTFS(ctx, cfg.GTFSPath)
	case config.SourceCSV, "":
		return l.LoadCSV(ctx, cfg.LinesPath, cfg.StepFreePath)
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrLoad, cfg.Source)
	}
}

// Fetch returns the raw bytes of a local file or an http(s) URL.
func (l *Loader) Fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("%w: empty source", ErrLoad)
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		data, err := os.ReadFile(urlOrPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch %s: %w", ErrLoad, urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrLoad, resp.StatusCode, urlOrPath)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrLoad, urlOrPath, err)
	}
	return data, nil
}
