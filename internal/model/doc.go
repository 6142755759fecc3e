// Package model defines the core data structures used throughout
// photosort.
//
// # MediaItem
//
// MediaItem represents one photo or video from the remote library,
// from enumeration through materialization:
//
//	item := model.MediaItem{ID: "...", Filename: "IMG_2041.JPG", ...}
//	item.Ext()                      // ".jpg"
//	item.IsVideo("Videos", exts)    // video-vs-photo decision
//
// # Album and AlbumContents
//
// Album is one entry of the canonical album listing; AlbumContents
// tags a fetched item list with its album id so concurrent fetch
// results can be restored to listing order.
//
// # Destination paths
//
// PathConfig maps a resolved label to a destination folder, and
// TimeStampName/AnomalyName derive filenames from corrected capture
// times:
//
//	cfg.FolderFor("Trip to Osaka")       // "/photos/Trip to Osaka"
//	model.TimeStampName(t, ".jpg")       // "2023-08-25 14.03.07.jpg"
//	model.AnomalyName(t, ".jpg")         // "2023-08-25 14.03.07.JPG"
package model
