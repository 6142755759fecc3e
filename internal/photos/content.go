package photos

import (
	"bytes"
	"context"

	"photosort/internal/model"
)

const (
	// PhotoVariant selects original-quality photo bytes.
	PhotoVariant = "=d"

	// VideoVariant selects original-quality video bytes.
	VideoVariant = "=dv"
)

// ContentURL returns the full-quality content URL for an item.
func ContentURL(item *model.MediaItem, isVideo bool) string {
	if isVideo {
		return item.BaseURL + VideoVariant
	}
	return item.BaseURL + PhotoVariant
}

// DownloadOriginal fetches the item's original-quality bytes. onUpdate,
// if non-nil, receives streaming progress as the body downloads.
func (s *Session) DownloadOriginal(ctx context.Context, item *model.MediaItem, isVideo bool, onUpdate func(written, total int64)) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.client.Download(ctx, ContentURL(item, isVideo), &buf, onUpdate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
