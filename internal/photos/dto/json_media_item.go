package dto

import "photosort/internal/model"

// SearchRequest is the body of the paginated mediaItems:search call.
//
// AlbumID and filter-based queries are mutually exclusive upstream;
// the session never sets both. A library-wide enumeration simply
// omits AlbumID.
type SearchRequest struct {
	AlbumID   string `json:"albumId,omitempty"`
	PageSize  int    `json:"pageSize"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchResponse is one page of search results. An absent
// NextPageToken marks the final page.
type SearchResponse struct {
	MediaItems    []JSONMediaItem `json:"mediaItems"`
	NextPageToken string          `json:"nextPageToken"`
}

// JSONMediaItem is the wire representation of one media item.
type JSONMediaItem struct {
	ID            string             `json:"id"`
	Filename      string             `json:"filename"`
	BaseURL       string             `json:"baseUrl"`
	MimeType      string             `json:"mimeType"`
	MediaMetadata *JSONMediaMetadata `json:"mediaMetadata"`
}

// JSONMediaMetadata carries the service-side capture metadata. Only
// the creation time is consumed.
type JSONMediaMetadata struct {
	CreationTime string `json:"creationTime"`
}

// ToMediaItem converts the wire representation to a model.MediaItem.
func (ji *JSONMediaItem) ToMediaItem() model.MediaItem {
	item := model.MediaItem{
		ID:       ji.ID,
		Filename: ji.Filename,
		BaseURL:  ji.BaseURL,
	}
	if ji.MediaMetadata != nil {
		item.CreationTime = ji.MediaMetadata.CreationTime
	}
	return item
}
