// Package scenarios evaluates batches of what-if movie concepts read from
// local files or object storage.
package scenarios

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/blockbuster/blockbuster/pkg/config"
)

// ErrUnsupportedScheme is returned by OpenURI for schemes other than
// s3://, gs:// and plain paths.
var ErrUnsupportedScheme = errors.New("unsupported scenario source scheme")

// Store abstracts read-only blob storage for scenario files.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// LocalStore implements Store using the local filesystem.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

// Get reads a scenario file relative to BaseDir. Absolute keys are read as-is.
func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	path := key
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, key)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// OpenURI returns a Store and object key for a scenario source:
//
//	s3://bucket/path/file.yaml
//	gs://bucket/path/file.yaml
//	file:///abs/path/file.yaml
//	path/file.yaml (read from the configured backend)
//
// S3 connection settings other than the bucket come from cfg.
func OpenURI(ctx context.Context, uri string, cfg config.ScenariosConfig) (Store, string, error) {
	if !strings.Contains(uri, "://") {
		store, err := OpenConfigured(ctx, cfg)
		if err != nil {
			return nil, "", err
		}
		return store, uri, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, "", fmt.Errorf("parse scenario uri: %w", err)
	}

	switch u.Scheme {
	case "file":
		if u.Path == "" {
			return nil, "", fmt.Errorf("scenario uri %q has no path", uri)
		}
		return NewLocalStore(""), u.Path, nil
	case "s3", "gs":
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, "", fmt.Errorf("scenario uri %q must name a bucket and an object", uri)
	}

	if u.Scheme == "gs" {
		store, err := NewGCSStore(ctx, u.Host)
		if err != nil {
			return nil, "", err
		}
		return store, key, nil
	}
	store, err := NewS3Store(ctx, S3Config{
		Bucket:    u.Host,
		Region:    cfg.Region,
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		return nil, "", err
	}
	return store, key, nil
}

// OpenConfigured returns the Store described by cfg.Backend.
func OpenConfigured(ctx context.Context, cfg config.ScenariosConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendS3:
		return NewS3Store(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
	case config.BackendGCS:
		return NewGCSStore(ctx, cfg.Bucket)
	default:
		return NewLocalStore(cfg.Dir), nil
	}
}
