package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	// Idempotent on an existing directory.
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir again: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(%q) = %v, %v; want directory", dir, info, err)
	}
}

func TestReplace_OverwritesExisting(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	staged := filepath.Join(dir, "IMG_0001.jpg")
	final := filepath.Join(dir, "2023-08-25 14.03.07.jpg")

	if err := WriteFile(ctx, final, []byte("stale")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(ctx, staged, []byte("fresh")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := Replace(ctx, staged, final); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	data, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "fresh" {
		t.Errorf("final contents = %q, want %q", data, "fresh")
	}
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Errorf("staged file should be gone, Stat err = %v", err)
	}
}

func TestDetectImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	format, err := DetectImage(buf.Bytes())
	if err != nil {
		t.Fatalf("DetectImage: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want %q", format, "png")
	}

	if _, err := DetectImage([]byte("definitely not an image")); err == nil {
		t.Error("expected error for non-image bytes")
	}
}
