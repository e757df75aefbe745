// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File copying, moving and writing
//   - Directory creation (one level)
//   - Cover image normalization to JPEG
//
// # File Operations
//
//	// Keep the cache file, write a copy
//	err := ioutils.CopyFile(ctx, src, dst)
//
//	// Replace the cache file
//	err := ioutils.MoveFile(ctx, src, dst)
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("./output_music")
//
// # Image Processing
//
// The ImageService prepares cover art for embedding:
//
//	svc := ioutils.NewImageService()
//	jpeg, err := svc.Normalize(ctx, data, 1000)
package ioutils
