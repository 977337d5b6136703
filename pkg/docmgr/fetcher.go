package docmgr

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	getter "github.com/hashicorp/go-getter"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/logger"
)

// Fetcher opens the bytes of a document given its location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (io.ReadCloser, error)
}

// Forgetter is implemented by fetchers that keep their own copies of
// documents.
type Forgetter interface {
	Forget(location string)
}

// LocalFetcher reads plain file paths and file:// URLs.
type LocalFetcher struct{}

// Fetch opens the file named by location.
func (LocalFetcher) Fetch(_ context.Context, location string) (io.ReadCloser, error) {
	path, ok := localPath(location)
	if !ok {
		return nil, errors.Newf("not a local document: %s", location)
	}
	return openFile(path)
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return f, nil
}

// localPath returns the file system path for a location, if it has one.
func localPath(location string) (string, bool) {
	if strings.HasPrefix(location, "file://") {
		u, err := url.Parse(location)
		if err != nil {
			return "", false
		}
		return filepath.FromSlash(u.Path), true
	}
	if u, err := url.Parse(location); err == nil && len(u.Scheme) > 1 {
		return "", false
	}
	return location, true
}

// GetterFetcher downloads remote documents with go-getter into a disk
// cache and serves later requests from the cached copy until it expires.
type GetterFetcher struct {
	cache   *DiskCache
	timeout time.Duration
	pwd     string
}

// NewGetterFetcher creates a fetcher that stores downloads in cacheDir.
func NewGetterFetcher(cacheDir string, ttl time.Duration) (*GetterFetcher, error) {
	cache, err := NewDiskCache(cacheDir, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize document cache")
	}
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}
	return &GetterFetcher{cache: cache, timeout: DefaultFetchTimeout, pwd: pwd}, nil
}

// SetTimeout bounds each download. Zero disables the bound.
func (f *GetterFetcher) SetTimeout(timeout time.Duration) { f.timeout = timeout }

// Fetch returns the cached copy of location or downloads it.
func (f *GetterFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if doc, ok := f.cache.Get(location); ok {
		logger.Debugw("document served from disk cache",
			logger.FieldURI, location,
			logger.FieldFile, doc.Path)
		return openFile(doc.Path)
	}

	detected, err := getter.Detect(location, f.pwd, getter.Detectors)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detect source type of %s", location)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	dst := f.cache.BodyPath(location)
	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dst,
		Pwd:     f.pwd,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}

	start := time.Now()
	if err := client.Get(); err != nil {
		return nil, errors.Wrapf(err, "failed to download %s", location)
	}
	logger.Debugw("document downloaded",
		logger.FieldURI, location,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	doc := CachedDocument{Location: location, Path: dst, FetchedAt: time.Now()}
	if err := f.cache.Set(doc); err != nil {
		logger.Warnw("failed to record cached document",
			logger.FieldURI, location,
			logger.FieldError, err.Error())
	}
	return openFile(dst)
}

// Forget drops the cached copy of location.
func (f *GetterFetcher) Forget(location string) {
	f.cache.Remove(location)
}

// Clear drops every cached copy.
func (f *GetterFetcher) Clear() error {
	return f.cache.Clear()
}

// RoutingFetcher reads local locations itself and hands everything else
// to Remote. With no Remote configured, remote locations fail.
type RoutingFetcher struct {
	Local  Fetcher
	Remote Fetcher
}

// Fetch dispatches on the location's scheme.
func (r RoutingFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if _, ok := localPath(location); ok {
		local := r.Local
		if local == nil {
			local = LocalFetcher{}
		}
		return local.Fetch(ctx, location)
	}
	if r.Remote == nil {
		return nil, errors.WithHint(errors.Newf("no remote fetcher for %s", location),
			"set a cache directory or map the document to a local alt_url in the policy")
	}
	return r.Remote.Fetch(ctx, location)
}

// Forget passes through to the remote fetcher when it keeps copies.
func (r RoutingFetcher) Forget(location string) {
	if f, ok := r.Remote.(Forgetter); ok {
		f.Forget(location)
	}
}
