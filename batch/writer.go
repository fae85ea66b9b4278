package batch

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

func writeZip(target io.Writer, deflate bool, quality int, pages <-chan page) error {
	w := zip.NewWriter(target)
	defer w.Close()

	method := zip.Store
	if deflate {
		method = zip.Deflate
	}

	for p := range pages {
		f, err := w.CreateHeader(&zip.FileHeader{Name: jpgFname(p.Name), Method: method})
		if err != nil {
			return fmt.Errorf("cannot create zip entry for %s: %w", p.Name, err)
		}
		if err := saveImg(f, p.Image, quality); err != nil {
			return err
		}
	}
	return nil
}

func jpgFname(n string) string {
	return fmt.Sprintf("%s.jpg", strings.TrimSuffix(filepath.Base(n), filepath.Ext(n)))
}
