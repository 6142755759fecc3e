package library

import (
	"fmt"
	"slices"

	"photosort/internal/localtime"
	"photosort/internal/model"
	"photosort/internal/report"
)

// Rule inspects the membership set built so far and may decide the
// final label, short-circuiting the album scan. Rules are pure and
// evaluated top-down after every album is checked.
type Rule func(titles []string) (label string, ok bool)

// ResolveConfig holds the label taxonomy the precedence rules work
// over. Defaults come from configuration; the zero value is not
// usable.
type ResolveConfig struct {
	// TerminalTitles are album titles that immediately decide the
	// label when encountered (e.g. a people-tagged or catch-all
	// system album).
	TerminalTitles []string

	// VideoTitle is the video-category album title, and also the
	// collapse target for heavily-overlapping items.
	VideoTitle string

	// OverlapThreshold is the membership-set size at which the label
	// collapses to VideoTitle. The upstream taxonomy fixed this at 3;
	// it is preserved as literal behavior.
	OverlapThreshold int

	// CombinedLabel is assigned to items found in exactly two
	// ordinary albums.
	CombinedLabel string

	// UnassignedLabel is assigned to items found in no album.
	UnassignedLabel string
}

// Resolver cross-references the full library listing against per-album
// contents and reduces each item's membership to a single destination
// label.
type Resolver struct {
	cfg   ResolveConfig
	rules []Rule
	conv  *localtime.Converter
	rec   *report.Recorder
}

// NewResolver creates a Resolver. The recorder receives a no-album
// anomaly for every item that resolves to the unassigned label.
func NewResolver(cfg ResolveConfig, conv *localtime.Converter, rec *report.Recorder) *Resolver {
	return &Resolver{
		cfg: cfg,
		rules: []Rule{
			terminalRule(cfg.TerminalTitles),
			videoOverlapRule(cfg.VideoTitle, cfg.OverlapThreshold),
		},
		conv: conv,
		rec:  rec,
	}
}

// terminalRule decides the label as soon as the set contains a
// terminal title. The terminal title itself wins, regardless of what
// else is in the set.
func terminalRule(terminals []string) Rule {
	return func(titles []string) (string, bool) {
		for _, title := range titles {
			if slices.Contains(terminals, title) {
				return title, true
			}
		}
		return "", false
	}
}

// videoOverlapRule collapses the label to the video title when the set
// contains it, or when the set has grown to the overlap threshold.
func videoOverlapRule(videoTitle string, threshold int) Rule {
	return func(titles []string) (string, bool) {
		if slices.Contains(titles, videoTitle) {
			return videoTitle, true
		}
		if threshold > 0 && len(titles) >= threshold {
			return videoTitle, true
		}
		return "", false
	}
}

// Resolve attaches exactly one label to every library item.
//
// For each item, albums are scanned in canonical listing order and the
// membership set grows incrementally; after each album the rules run
// top-down and the first match ends the scan. Scans that finish
// naturally reduce by set size: empty means unassigned (with a
// no-album anomaly recorded), one title is itself, two collapse to the
// combined label.
//
// contents must be in canonical order, aligned index-for-index with
// albums.
func (r *Resolver) Resolve(items []model.MediaItem, albums []model.Album, contents []model.AlbumContents) ([]model.MediaItem, error) {
	if len(albums) != len(contents) {
		return nil, fmt.Errorf("album/contents mismatch: %d albums, %d content sets", len(albums), len(contents))
	}
	for i := range albums {
		if albums[i].ID != contents[i].AlbumID {
			return nil, fmt.Errorf("contents out of order at %d: album %q, contents %q", i, albums[i].ID, contents[i].AlbumID)
		}
	}

	memberships := make([]map[string]struct{}, len(contents))
	for i, c := range contents {
		set := make(map[string]struct{}, len(c.Items))
		for _, it := range c.Items {
			set[it.ID] = struct{}{}
		}
		memberships[i] = set
	}

	resolved := make([]model.MediaItem, len(items))
	for i, item := range items {
		item.Label = r.resolveOne(&item, albums, memberships)
		resolved[i] = item
	}
	return resolved, nil
}

func (r *Resolver) resolveOne(item *model.MediaItem, albums []model.Album, memberships []map[string]struct{}) string {
	var titles []string

	for j := range albums {
		if _, ok := memberships[j][item.ID]; ok {
			titles = append(titles, albums[j].Title)
		}
		for _, rule := range r.rules {
			if label, ok := rule(titles); ok {
				return label
			}
		}
	}

	switch len(titles) {
	case 0:
		r.recordNoAlbum(item)
		return r.cfg.UnassignedLabel
	case 1:
		return titles[0]
	case 2:
		return r.cfg.CombinedLabel
	default:
		return r.cfg.VideoTitle
	}
}

func (r *Resolver) recordNoAlbum(item *model.MediaItem) {
	name := item.Filename
	if local, err := r.conv.Convert(item.CreationTime); err == nil {
		name = model.AnomalyName(local, item.Ext())
	}
	r.rec.NoAlbum(name)
}
