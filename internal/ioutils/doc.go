// Package ioutils provides file system and image sniffing utilities.
//
// This package contains functions for:
//   - Directory creation
//   - File writing
//   - Atomic replace-on-rename for staged downloads
//   - Image format detection
//
// # File Operations
//
//	// Ensure the destination album folder exists
//	err := ioutils.EnsureDir("/photos/Beach")
//
//	// Stage downloaded bytes, then land them on the final name
//	err = ioutils.WriteFile(ctx, staged, data)
//	err = ioutils.Replace(ctx, staged, final)
//
// # Image Detection
//
// DetectImage identifies the container format of downloaded bytes, so
// PNG files can get their format-specific creation-time patch:
//
//	format, err := ioutils.DetectImage(data) // "png", "jpeg", ...
package ioutils
