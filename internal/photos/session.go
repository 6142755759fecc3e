package photos

import (
	"context"
	"fmt"

	"photosort/internal/httpx"
	"photosort/internal/model"
	"photosort/internal/photos/dto"
)

const (
	// DefaultBaseURL is the production endpoint of the photo service.
	DefaultBaseURL = "https://photoslibrary.googleapis.com"

	// DefaultPageSize is the search page size.
	DefaultPageSize = 20

	// DefaultAlbumPageSize bounds the single album-listing call.
	DefaultAlbumPageSize = 50
)

// Config holds what a Session needs to talk to the service.
type Config struct {
	// AccessToken is the OAuth bearer token supplied by the external
	// authentication collaborator.
	AccessToken string

	// BaseURL overrides the service endpoint; empty means
	// DefaultBaseURL. Tests point this at a local server.
	BaseURL string

	// PageSize is the mediaItems:search page size; 0 means
	// DefaultPageSize.
	PageSize int

	// AlbumPageSize is the album-listing page size; 0 means
	// DefaultAlbumPageSize.
	AlbumPageSize int
}

// Session is one authenticated connection to the photo service.
//
// A Session is not safe for concurrent reuse: each concurrent
// album-fetch worker must hold its own Session, created through a
// Factory. The download phase shares a single Session across item
// tasks on purpose; its underlying client's connection pool bounds
// socket usage there.
type Session struct {
	client        *httpx.Client
	baseURL       string
	pageSize      int
	albumPageSize int
}

// NewSession creates a Session from cfg, applying defaults for unset
// fields.
func NewSession(cfg Config) *Session {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	albumPageSize := cfg.AlbumPageSize
	if albumPageSize <= 0 {
		albumPageSize = DefaultAlbumPageSize
	}
	return &Session{
		client:        httpx.NewClient(cfg.AccessToken),
		baseURL:       baseURL,
		pageSize:      pageSize,
		albumPageSize: albumPageSize,
	}
}

// Factory creates independent Sessions from a shared credential. Each
// call returns a Session with its own HTTP client.
type Factory func() *Session

// NewFactory returns a Factory over cfg.
func NewFactory(cfg Config) Factory {
	return func() *Session {
		return NewSession(cfg)
	}
}

// searchPage fetches one page of search results. The request is owned
// by the calling Pager; no parameter state is shared between
// concurrent enumerations.
func (s *Session) searchPage(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	var resp dto.SearchResponse
	if err := s.client.PostJSON(ctx, s.baseURL+"/v1/mediaItems:search", req, &resp); err != nil {
		return nil, fmt.Errorf("search media items: %w", err)
	}
	return &resp, nil
}

// ListAlbums returns the user's albums in canonical listing order.
//
// A single request is issued with the configured page size; that order
// is load-bearing for membership resolution downstream.
func (s *Session) ListAlbums(ctx context.Context) ([]model.Album, error) {
	url := fmt.Sprintf("%s/v1/albums?pageSize=%d", s.baseURL, s.albumPageSize)

	var resp dto.ListAlbumsResponse
	if err := s.client.GetJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	albums := make([]model.Album, 0, len(resp.Albums))
	for _, ja := range resp.Albums {
		albums = append(albums, ja.ToAlbum())
	}
	return albums, nil
}
