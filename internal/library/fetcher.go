package library

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"photosort/internal/localtime"
	"photosort/internal/model"
)

// Source enumerates one album's items. photos.Session satisfies this;
// tests substitute fakes.
type Source interface {
	AlbumItems(ctx context.Context, albumID string, cutoff time.Time, conv *localtime.Converter) ([]model.MediaItem, error)
}

// SourceFactory produces an independent Source per fetch worker. The
// remote session object is not safe for concurrent reuse, so every
// worker gets its own.
type SourceFactory func() Source

// FetchConfig controls the concurrent album-fetch phase.
type FetchConfig struct {
	// Limit bounds worker parallelism. Zero or negative means
	// min(GOMAXPROCS, album count).
	Limit int

	// AbortOnError aborts the whole fetch when any album fails
	// (default policy): partial album data would corrupt membership
	// resolution silently. When false, a failed album yields empty
	// contents and a warning.
	AbortOnError bool

	// OnWarning receives per-album failures under the
	// partial-result policy. May be nil.
	OnWarning func(album model.Album, err error)
}

// Fetcher runs the per-album enumeration concurrently and merges the
// results back into canonical album-listing order.
type Fetcher struct {
	factory SourceFactory
	conv    *localtime.Converter
	cfg     FetchConfig
}

// NewFetcher creates a Fetcher.
func NewFetcher(factory SourceFactory, conv *localtime.Converter, cfg FetchConfig) *Fetcher {
	return &Fetcher{factory: factory, conv: conv, cfg: cfg}
}

// FetchAll fetches every album's contents with bounded parallelism.
//
// Workers complete in arbitrary order, so each result is stored keyed
// by album id and the returned slice is assembled by an index lookup
// over the canonical listing afterwards. The reordering is a contract,
// not an optimization: the resolver indexes contents by album
// position.
//
// Under AbortOnError the first failure cancels the remaining workers
// and fails the fetch; otherwise failed albums come back empty.
func (f *Fetcher) FetchAll(ctx context.Context, albums []model.Album, cutoff time.Time) ([]model.AlbumContents, error) {
	limit := f.cfg.Limit
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	if limit > len(albums) {
		limit = len(albums)
	}
	if limit < 1 {
		limit = 1
	}

	var mu sync.Mutex
	results := make(map[string][]model.MediaItem, len(albums))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, album := range albums {
		album := album
		g.Go(func() error {
			src := f.factory()
			items, err := src.AlbumItems(gctx, album.ID, cutoff, f.conv)
			if err != nil {
				if f.cfg.AbortOnError {
					return fmt.Errorf("fetch album %q: %w", album.Title, err)
				}
				if f.cfg.OnWarning != nil {
					f.cfg.OnWarning(album, err)
				}
				items = nil
			}
			mu.Lock()
			results[album.ID] = items
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ordered := make([]model.AlbumContents, 0, len(albums))
	for _, album := range albums {
		ordered = append(ordered, model.AlbumContents{
			AlbumID: album.ID,
			Items:   results[album.ID],
		})
	}
	return ordered, nil
}
