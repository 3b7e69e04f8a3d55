package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file inside a result archive.
type Entry struct {
	Filename string
	Data     []byte
}

// ArchiveResults packs session results into an in-memory zip, one PNG per
// entry, numbered the way the gallery displays them.
func ArchiveResults(results [][]byte) []byte {
	entries := make([]Entry, 0, len(results))
	for i, data := range results {
		entries = append(entries, Entry{
			Filename: fmt.Sprintf("result_%d.png", i+1),
			Data:     data,
		})
	}
	return Archive(entries)
}

// Archive writes the entries into a zip held in memory.
func Archive(entries []Entry) []byte {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.Filename)
		if err != nil {
			continue
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil
		}
	}
	_ = zw.Close()
	return buf.Bytes()
}
