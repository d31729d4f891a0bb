package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxRemoteDocument caps the size of contract documents fetched over HTTP.
const maxRemoteDocument = 4 << 20

// SourceKind describes where a contract document is read from.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies a contract document.
type Source interface {
	Location() string
	Kind() SourceKind
}

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a document inside fsys.
func SourceFromFS(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL validates raw and returns a Source for it.
func SourceFromURL(raw string) (Source, error) {
	parsed, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("openapi: invalid URL %q", raw)
	}
	return urlSource{raw: parsed.String()}, nil
}

// ParseSource treats http(s) locations as URLs and everything else as a file
// path.
func ParseSource(raw string) (Source, error) {
	location := strings.TrimSpace(raw)
	if location == "" {
		return nil, errors.New("openapi: source is required")
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return SourceFromURL(location)
	}
	return SourceFromFile(location), nil
}

// LoaderOption configures how remote sources are fetched.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	client  *http.Client
	timeout time.Duration
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *loaderOptions) {
		if client != nil {
			opts.client = client
		}
	}
}

// WithRequestTimeout caps remote fetch durations.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *loaderOptions) {
		opts.timeout = timeout
	}
}

// LoadContractFrom reads the document src points at and parses it with
// LoadContract.
func LoadContractFrom(ctx context.Context, src Source, options ...LoaderOption) (*Contract, error) {
	if src == nil {
		return nil, errors.New("openapi: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts := loaderOptions{client: http.DefaultClient, timeout: 10 * time.Second}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	raw, err := readSource(ctx, src, opts)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s %q: %w", src.Kind(), src.Location(), err)
	}
	return LoadContract(ctx, raw)
}

func readSource(ctx context.Context, src Source, opts loaderOptions) ([]byte, error) {
	switch s := src.(type) {
	case fileSource:
		return os.ReadFile(s.path)
	case fsSource:
		if s.fsys == nil {
			return nil, errors.New("filesystem is nil")
		}
		return fs.ReadFile(s.fsys, s.name)
	case urlSource:
		return fetch(ctx, s.raw, opts)
	default:
		return nil, fmt.Errorf("unsupported source kind %q", src.Kind())
	}
}

func fetch(ctx context.Context, raw string, opts loaderOptions) ([]byte, error) {
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := opts.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxRemoteDocument))
}
