package ioutils

import (
	"context"
	"errors"
	"io"
	"os"
)

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
//
// Example:
//
//	err := CopyFile(ctx, "/cache/186016-320-4b1f.mp3", "/music/Sigur Rós - Svefn-g-englar.mp3")
func CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}

// MoveFile renames src to dst, replacing dst if it exists.
//
// Source and destination must be on the same filesystem.
func MoveFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Rename(src, dst)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates path if it does not exist. Only the last element is
// created; a missing parent is an error.
//
// Directories are created with mode 0755 (rwxr-xr-x).
func EnsureDir(path string) error {
	err := os.Mkdir(path, 0755)
	if err == nil || errors.Is(err, os.ErrExist) {
		return nil
	}
	return err
}
