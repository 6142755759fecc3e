package photos

import (
	"context"
	"time"

	"photosort/internal/localtime"
	"photosort/internal/model"
	"photosort/internal/photos/dto"
)

// Pager lazily enumerates a media collection page by page, stopping at
// a cutoff date.
//
// The sequence is finite, single-pass and non-restartable. Every
// yielded item's creation time is converted to the destination
// timezone and compared to the cutoff; enumeration terminates, without
// yielding, the moment an item falls before the cutoff, and also when
// the service returns no continuation token.
//
// Early termination assumes pages arrive newest-first. The listing
// endpoint does not guarantee this in its contract; if the ordering
// ever breaks, items older than the first pre-cutoff item are silently
// skipped. That is an accepted property of the cutoff optimization,
// not something the Pager tries to detect.
//
// Usage follows the bufio.Scanner pattern:
//
//	pager := session.Search("", cutoff, conv)
//	for pager.Next(ctx) {
//	    item := pager.Item()
//	    ...
//	}
//	if err := pager.Err(); err != nil {
//	    return err
//	}
type Pager struct {
	session *Session
	conv    *localtime.Converter
	cutoff  time.Time

	// req is owned exclusively by this Pager; concurrent enumerations
	// never share parameter state.
	req dto.SearchRequest

	buf     []model.MediaItem
	idx     int
	item    model.MediaItem
	started bool
	done    bool
	err     error
}

// Search starts a lazy enumeration. An empty albumID enumerates the
// whole library; a non-empty albumID scopes the search to that album
// (the two request forms are mutually exclusive upstream, so filters
// are never combined with an album id).
func (s *Session) Search(albumID string, cutoff time.Time, conv *localtime.Converter) *Pager {
	return &Pager{
		session: s,
		conv:    conv,
		cutoff:  cutoff,
		req: dto.SearchRequest{
			AlbumID:  albumID,
			PageSize: s.pageSize,
		},
	}
}

// Next advances to the next item. It returns false when the sequence
// is exhausted, the cutoff is reached, or an error occurred; check Err
// after the loop.
func (p *Pager) Next(ctx context.Context) bool {
	if p.done {
		return false
	}

	for {
		if p.idx < len(p.buf) {
			it := p.buf[p.idx]
			local, err := p.conv.Convert(it.CreationTime)
			if err != nil {
				p.err = err
				p.done = true
				return false
			}
			if local.Before(p.cutoff) {
				p.done = true
				return false
			}
			p.idx++
			p.item = it
			return true
		}

		if p.started && p.req.PageToken == "" {
			p.done = true
			return false
		}

		resp, err := p.session.searchPage(ctx, p.req)
		if err != nil {
			p.err = err
			p.done = true
			return false
		}
		p.started = true

		p.buf = p.buf[:0]
		for _, ji := range resp.MediaItems {
			p.buf = append(p.buf, ji.ToMediaItem())
		}
		p.idx = 0
		p.req.PageToken = resp.NextPageToken

		if len(p.buf) == 0 && p.req.PageToken == "" {
			p.done = true
			return false
		}
	}
}

// Item returns the item produced by the last successful Next call.
func (p *Pager) Item() model.MediaItem {
	return p.item
}

// Err returns the first error encountered, if any.
func (p *Pager) Err() error {
	return p.err
}

// Drain runs the enumeration to completion and returns all yielded
// items.
func (p *Pager) Drain(ctx context.Context) ([]model.MediaItem, error) {
	var items []model.MediaItem
	for p.Next(ctx) {
		items = append(items, p.Item())
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// AlbumItems enumerates one album to exhaustion, honoring the cutoff.
// This is the per-worker entry point the album fetcher drives.
func (s *Session) AlbumItems(ctx context.Context, albumID string, cutoff time.Time, conv *localtime.Converter) ([]model.MediaItem, error) {
	return s.Search(albumID, cutoff, conv).Drain(ctx)
}
