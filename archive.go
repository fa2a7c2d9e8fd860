// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// BuildArchive packages the given files into one zip at zipPath, keeping
// the path strings as given. An empty file list is a distinct "nothing
// to package" condition (ErrNothingToPackage); an unreadable input file
// fails the whole archive with its path in the error.
func BuildArchive(zipPath string, files []string) error {
	if len(files) == 0 {
		return ErrNothingToPackage
	}
	fh, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", zipPath, err)
	}
	defer fh.Close()
	zw := zip.NewWriter(fh)
	for _, fn := range files {
		if err = addFile(zw, fn); err != nil {
			return fmt.Errorf("add %q: %w", fn, err)
		}
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("close %q: %w", zipPath, err)
	}
	return fh.Close()
}

func addFile(zw *zip.Writer, fn string) error {
	src, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer src.Close()
	w, err := zw.Create(filepath.ToSlash(fn))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
