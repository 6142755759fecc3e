package photos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"photosort/internal/localtime"
	"photosort/internal/model"
	"photosort/internal/photos/dto"
)

func testConverter(t *testing.T) *localtime.Converter {
	t.Helper()
	conv, err := localtime.NewConverter("America/Los_Angeles")
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	return conv
}

func item(id, created string) dto.JSONMediaItem {
	return dto.JSONMediaItem{
		ID:            id,
		Filename:      id + ".jpg",
		BaseURL:       "https://content.example/" + id,
		MediaMetadata: &dto.JSONMediaMetadata{CreationTime: created},
	}
}

// searchServer serves canned pages keyed by page token ("" for the
// first page) and records requests.
func searchServer(t *testing.T, pages map[string]dto.SearchResponse) (*httptest.Server, *[]dto.SearchRequest) {
	t.Helper()
	var seen []dto.SearchRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/mediaItems:search" {
			http.NotFound(w, r)
			return
		}
		var req dto.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		seen = append(seen, req)
		resp, ok := pages[req.PageToken]
		if !ok {
			t.Errorf("unexpected page token %q", req.PageToken)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return srv, &seen
}

func TestPager_WalksAllPages(t *testing.T) {
	pages := map[string]dto.SearchResponse{
		"": {
			MediaItems:    []dto.JSONMediaItem{item("a", "2023-08-27T12:00:00Z"), item("b", "2023-08-26T12:00:00Z")},
			NextPageToken: "p2",
		},
		"p2": {
			MediaItems: []dto.JSONMediaItem{item("c", "2023-08-25T12:00:00Z")},
		},
	}
	srv, seen := searchServer(t, pages)

	session := NewSession(Config{BaseURL: srv.URL, PageSize: 2})
	cutoff := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)

	items, err := session.Search("", cutoff, testConverter(t)).Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}

	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("ids = %v, want [a b c]", ids)
	}

	if len(*seen) != 2 {
		t.Fatalf("requests = %d, want 2", len(*seen))
	}
	if (*seen)[1].PageToken != "p2" {
		t.Errorf("second request token = %q, want %q", (*seen)[1].PageToken, "p2")
	}
}

func TestPager_StopsAtCutoff(t *testing.T) {
	// Second item precedes the cutoff; the third is newer again but
	// must not be yielded (newest-first assumption is honored, not
	// verified).
	pages := map[string]dto.SearchResponse{
		"": {
			MediaItems: []dto.JSONMediaItem{
				item("new", "2023-08-27T12:00:00Z"),
				item("old", "2023-07-01T12:00:00Z"),
				item("newer-again", "2023-08-28T12:00:00Z"),
			},
			NextPageToken: "p2",
		},
	}
	srv, seen := searchServer(t, pages)

	session := NewSession(Config{BaseURL: srv.URL})
	cutoff := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)

	items, err := session.Search("", cutoff, testConverter(t)).Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}

	if len(items) != 1 || items[0].ID != "new" {
		t.Errorf("items = %v, want only \"new\"", items)
	}
	// The continuation page is never requested once the cutoff fires.
	if len(*seen) != 1 {
		t.Errorf("requests = %d, want 1", len(*seen))
	}
}

func TestPager_FirstItemBeforeCutoffYieldsNothing(t *testing.T) {
	pages := map[string]dto.SearchResponse{
		"": {MediaItems: []dto.JSONMediaItem{item("old", "2022-01-01T12:00:00Z")}},
	}
	srv, _ := searchServer(t, pages)

	session := NewSession(Config{BaseURL: srv.URL})
	cutoff := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)

	items, err := session.Search("", cutoff, testConverter(t)).Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want none", items)
	}
}

func TestPager_MalformedTimestampPropagates(t *testing.T) {
	pages := map[string]dto.SearchResponse{
		"": {MediaItems: []dto.JSONMediaItem{item("bad", "garbage")}},
	}
	srv, _ := searchServer(t, pages)

	session := NewSession(Config{BaseURL: srv.URL})
	pager := session.Search("", time.Time{}, testConverter(t))

	for pager.Next(context.Background()) {
	}
	if pager.Err() == nil {
		t.Fatal("expected error for malformed timestamp")
	}
}

func TestPager_AlbumScopedRequest(t *testing.T) {
	pages := map[string]dto.SearchResponse{
		"": {MediaItems: []dto.JSONMediaItem{item("a", "2023-08-27T12:00:00Z")}},
	}
	srv, seen := searchServer(t, pages)

	session := NewSession(Config{BaseURL: srv.URL, PageSize: 20})
	_, err := session.AlbumItems(context.Background(), "album-1", time.Time{}, testConverter(t))
	if err != nil {
		t.Fatalf("AlbumItems: %v", err)
	}

	req := (*seen)[0]
	if req.AlbumID != "album-1" {
		t.Errorf("AlbumID = %q, want %q", req.AlbumID, "album-1")
	}
	if req.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", req.PageSize)
	}
}

func TestSession_ListAlbums(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/albums" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("pageSize"); got != "50" {
			t.Errorf("pageSize = %q, want %q", got, "50")
		}
		json.NewEncoder(w).Encode(dto.ListAlbumsResponse{
			Albums: []dto.JSONAlbum{{ID: "a1", Title: "First"}, {ID: "a2", Title: "Second"}},
		})
	}))
	t.Cleanup(srv.Close)

	session := NewSession(Config{BaseURL: srv.URL})
	albums, err := session.ListAlbums(context.Background())
	if err != nil {
		t.Fatalf("ListAlbums: %v", err)
	}

	if len(albums) != 2 || albums[0].Title != "First" || albums[1].Title != "Second" {
		t.Errorf("albums = %v, want [First Second] in order", albums)
	}
}

func TestSession_DownloadOriginalVariants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bytes"))
	}))
	t.Cleanup(srv.Close)

	photo := model.MediaItem{ID: "p1", Filename: "p1.jpg", BaseURL: srv.URL + "/content"}
	if got := ContentURL(&photo, false); got != srv.URL+"/content=d" {
		t.Errorf("photo URL = %q, want suffix =d", got)
	}
	if got := ContentURL(&photo, true); got != srv.URL+"/content=dv" {
		t.Errorf("video URL = %q, want suffix =dv", got)
	}

	session := NewSession(Config{BaseURL: srv.URL})
	var gotWritten int64
	data, err := session.DownloadOriginal(context.Background(), &photo, false, func(written, _ int64) {
		gotWritten = written
	})
	if err != nil {
		t.Fatalf("DownloadOriginal: %v", err)
	}
	if string(data) != "bytes" {
		t.Errorf("data = %q, want %q", data, "bytes")
	}
	if gotWritten != int64(len("bytes")) {
		t.Errorf("progress written = %d, want %d", gotWritten, len("bytes"))
	}
}
