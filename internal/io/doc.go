// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Existence checks for files and directories
//   - Directory creation
//   - Transient working files that are always cleaned up
//   - Cover art lookup, resizing and format conversion
//
// # File Operations
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("/path/to/sound_samples")
//
//	// Write a uniquely named working file and remove it when done
//	path, err := ioutils.WriteTempFile(dir, "concat-", ".txt", []byte("..."))
//	defer ioutils.RemoveQuietly(path)
//
// # Image Processing
//
// The ImageService prepares soundpack cover art for embedding:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
package ioutils
