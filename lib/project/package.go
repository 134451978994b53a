// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression names the archive compression algorithm. The value
// travels in BuildParams so the server knows how to unpack.
type Compression string

const (
	// CompressionZstd is the default: better ratios for the source
	// trees builds typically upload.
	CompressionZstd Compression = "zstd"

	// CompressionLZ4 trades ratio for speed. Useful for very large
	// projects on fast links.
	CompressionLZ4 Compression = "lz4"
)

// ParseCompression validates a user-supplied compression name.
func ParseCompression(name string) (Compression, error) {
	switch Compression(name) {
	case CompressionZstd, CompressionLZ4:
		return Compression(name), nil
	}
	return "", fmt.Errorf("unknown compression %q (expected zstd or lz4)", name)
}

// Package archives the project directory as a compressed tar. The
// archive is deterministic for identical trees: entries appear in
// lexical walk order and timestamps, ownership, and group bits are
// cleared, so re-packaging an unchanged project uploads byte-identical
// requests.
func Package(dir string, manifest *Manifest, compression Compression) ([]byte, error) {
	var buffer bytes.Buffer
	compressor, err := newCompressor(&buffer, compression)
	if err != nil {
		return nil, err
	}

	tarWriter := tar.NewWriter(compressor)
	err = filepath.WalkDir(dir, func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		relative, err := filepath.Rel(dir, filePath)
		if err != nil {
			return err
		}
		if relative == "." {
			return nil
		}
		relative = filepath.ToSlash(relative)

		if entry.IsDir() {
			if excluded(relative, manifest.Exclude) || path.Base(relative) == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		// The manifest is never excludable: the server needs it to
		// interpret the archive, even under patterns like "*.yaml".
		isManifest := relative == ManifestYAML || relative == ManifestJSONC
		if !isManifest && excluded(relative, manifest.Exclude) {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		header := &tar.Header{
			Name: relative,
			Mode: int64(info.Mode().Perm()),
			Size: info.Size(),
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			return err
		}
		file, err := os.Open(filePath)
		if err != nil {
			return err
		}
		_, err = io.Copy(tarWriter, file)
		file.Close()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("packaging %s: %w", dir, err)
	}

	if err := tarWriter.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return nil, fmt.Errorf("finalizing compression: %w", err)
	}
	return buffer.Bytes(), nil
}

// newCompressor wraps writer with the requested compression stream.
func newCompressor(writer io.Writer, compression Compression) (io.WriteCloser, error) {
	switch compression {
	case CompressionZstd:
		compressor, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, fmt.Errorf("initializing zstd: %w", err)
		}
		return compressor, nil
	case CompressionLZ4:
		return lz4.NewWriter(writer), nil
	}
	return nil, fmt.Errorf("unknown compression %q", compression)
}

// excluded reports whether a slash-separated relative path matches any
// exclude pattern. Patterns match against the full relative path and
// against the base name, so "*.log" excludes logs at any depth.
func excluded(relative string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := path.Match(pattern, relative); matched {
			return true
		}
		if matched, _ := path.Match(pattern, path.Base(relative)); matched {
			return true
		}
	}
	return false
}
