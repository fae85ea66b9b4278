package batch

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedFormat is returned when a source path is neither a
// directory nor a .zip/.cbz archive.
var ErrUnsupportedFormat = errors.New("unsupported format")

// reader reads a source path's contents and emits a page for each image
// found in it.
type reader func(ctx context.Context, pages chan<- page, path string) error

// rawPage is an image before decoding.
type rawPage struct {
	File  io.ReadCloser
	Name  string
	Index int
}

// selectReader returns the appropriate reader for path's format.
func selectReader(path string) (reader, error) {
	f, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case "":
		if f.IsDir() {
			return readDir, nil
		}
	case ".zip", ".cbz":
		return readZip, nil
	}
	return nil, ErrUnsupportedFormat
}

func readDir(ctx context.Context, pages chan<- page, path string) error {
	errg, ctx := errgroup.WithContext(ctx)
	raw := make(chan rawPage)
	errg.Go(func() error {
		defer close(raw)
		return readDirFiles(ctx, raw, path)
	})
	errg.Go(func() error {
		return decode(ctx, pages, raw)
	})
	return errg.Wait()
}

func readDirFiles(ctx context.Context, raw chan<- rawPage, root string) error {
	i := 0
	return filepath.WalkDir(root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("cannot walk %s: %w", root, err)
		}
		if e.IsDir() || !isImage(path) {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", path, err)
		}
		select {
		case raw <- rawPage{file, filepath.Base(path), i}:
		case <-ctx.Done():
			file.Close()
			return ctx.Err()
		}
		i++
		return nil
	})
}

func readZip(ctx context.Context, pages chan<- page, path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer r.Close()

	errg, ctx := errgroup.WithContext(ctx)
	raw := make(chan rawPage)
	errg.Go(func() error {
		defer close(raw)
		return readZipFiles(ctx, raw, r)
	})
	errg.Go(func() error {
		return decode(ctx, pages, raw)
	})
	return errg.Wait()
}

func readZipFiles(ctx context.Context, raw chan<- rawPage, r *zip.ReadCloser) error {
	i := 0
	for _, f := range r.File {
		if !isImage(f.Name) {
			continue
		}
		file, err := f.Open()
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", f.Name, err)
		}
		select {
		case raw <- rawPage{file, filepath.Base(f.Name), i}:
		case <-ctx.Done():
			file.Close()
			return ctx.Err()
		}
		i++
	}
	return nil
}

func isImage(fname string) bool {
	switch filepath.Ext(fname) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	default:
		return false
	}
}
