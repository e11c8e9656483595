package verify

import (
	"archive/zip"
	"io"
)

// checkZip verifies a self-contained ZIP archive with the standard library
// decoder. Every entry is read to EOF so the decoder actually validates the
// stored CRC; opening alone only parses the central directory.
func checkZip(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return classifyOpenError("zip", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := drainZipEntry(f); err != nil {
			return err
		}
	}
	return nil
}

func drainZipEntry(f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return entryError("zip", f.Name, err)
	}
	defer rc.Close()
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return entryError("zip", f.Name, err)
	}
	return nil
}
