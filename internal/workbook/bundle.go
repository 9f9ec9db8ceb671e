// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"archive/zip"
	"fmt"
	"io"
)

// Entry is one file to place in a bundle.
type Entry struct {
	Name string
	Data []byte
}

// WriteZip writes the entries as a deflate-compressed zip archive to w.
// Used when a run produced several workbooks and the staff want one download.
func WriteZip(w io.Writer, entries []Entry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		f, err := zw.Create(e.Name)
		if err != nil {
			return fmt.Errorf("adding %s to bundle: %w", e.Name, err)
		}
		if _, err := f.Write(e.Data); err != nil {
			return fmt.Errorf("writing %s to bundle: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing bundle: %w", err)
	}
	return nil
}
