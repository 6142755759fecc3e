// Package exif repairs capture-time metadata on downloaded images by
// driving an external exiftool subprocess.
package exif
