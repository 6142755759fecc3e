package library

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"photosort/internal/localtime"
	"photosort/internal/model"
)

type fakeSource struct {
	items func(albumID string) ([]model.MediaItem, error)
}

func (f *fakeSource) AlbumItems(ctx context.Context, albumID string, cutoff time.Time, conv *localtime.Converter) ([]model.MediaItem, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return f.items(albumID)
}

func testAlbums(n int) []model.Album {
	albums := make([]model.Album, n)
	for i := range albums {
		albums[i] = model.Album{
			ID:    "album-" + string(rune('a'+i)),
			Title: "Album " + string(rune('A'+i)),
		}
	}
	return albums
}

func TestFetcher_CanonicalOrderUnderRandomCompletion(t *testing.T) {
	albums := testAlbums(8)

	factory := func() Source {
		return &fakeSource{items: func(albumID string) ([]model.MediaItem, error) {
			// Randomized delay so workers finish out of order.
			time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
			return []model.MediaItem{{ID: "item-of-" + albumID}}, nil
		}}
	}

	fetcher := NewFetcher(factory, nil, FetchConfig{Limit: 4, AbortOnError: true})
	contents, err := fetcher.FetchAll(context.Background(), albums, time.Time{})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if len(contents) != len(albums) {
		t.Fatalf("got %d content sets, want %d", len(contents), len(albums))
	}
	for i, c := range contents {
		if c.AlbumID != albums[i].ID {
			t.Errorf("contents[%d].AlbumID = %q, want %q", i, c.AlbumID, albums[i].ID)
		}
		if len(c.Items) != 1 || c.Items[0].ID != "item-of-"+albums[i].ID {
			t.Errorf("contents[%d].Items = %v, want single item for %q", i, c.Items, albums[i].ID)
		}
	}
}

func TestFetcher_AbortOnErrorCancelsSiblings(t *testing.T) {
	albums := testAlbums(6)
	var calls atomic.Int32

	factory := func() Source {
		return &fakeSource{items: func(albumID string) ([]model.MediaItem, error) {
			calls.Add(1)
			if albumID == albums[0].ID {
				return nil, errors.New("boom")
			}
			time.Sleep(5 * time.Millisecond)
			return nil, nil
		}}
	}

	fetcher := NewFetcher(factory, nil, FetchConfig{Limit: 2, AbortOnError: true})
	_, err := fetcher.FetchAll(context.Background(), albums, time.Time{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), albums[0].Title) {
		t.Errorf("error %q does not name the failed album %q", err, albums[0].Title)
	}
}

func TestFetcher_PartialPolicyKeepsGoing(t *testing.T) {
	albums := testAlbums(3)
	var warned []string

	factory := func() Source {
		return &fakeSource{items: func(albumID string) ([]model.MediaItem, error) {
			if albumID == albums[1].ID {
				return nil, errors.New("boom")
			}
			return []model.MediaItem{{ID: "item-of-" + albumID}}, nil
		}}
	}

	fetcher := NewFetcher(factory, nil, FetchConfig{
		Limit: 1,
		OnWarning: func(album model.Album, err error) {
			warned = append(warned, album.Title)
		},
	})
	contents, err := fetcher.FetchAll(context.Background(), albums, time.Time{})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if len(warned) != 1 || warned[0] != albums[1].Title {
		t.Errorf("warnings = %v, want [%q]", warned, albums[1].Title)
	}
	if len(contents[1].Items) != 0 {
		t.Errorf("failed album contents = %v, want empty", contents[1].Items)
	}
	if len(contents[0].Items) != 1 || len(contents[2].Items) != 1 {
		t.Errorf("healthy albums should keep their items: %v", contents)
	}
}
