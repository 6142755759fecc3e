package model

// NoEXIFRecord marks an image whose embedded capture metadata was
// synthesized rather than repaired. Name is the timestamp-derived
// filename (upper-cased extension); CapturedAt is the corrected
// capture time that was written.
type NoEXIFRecord struct {
	Name       string
	CapturedAt string
}

// NoAlbumRecord marks an item that matched no album and was
// materialized under the unorganized folder.
type NoAlbumRecord struct {
	Name string
}
