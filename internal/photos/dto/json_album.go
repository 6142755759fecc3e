package dto

import "photosort/internal/model"

// ListAlbumsResponse is the album-listing endpoint's response. The
// album order here is the canonical listing order the resolver's
// tie-break rules depend on.
type ListAlbumsResponse struct {
	Albums        []JSONAlbum `json:"albums"`
	NextPageToken string      `json:"nextPageToken"`
}

// JSONAlbum is the wire representation of one album.
type JSONAlbum struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ToAlbum converts the wire representation to a model.Album.
func (ja *JSONAlbum) ToAlbum() model.Album {
	return model.Album{ID: ja.ID, Title: ja.Title}
}
