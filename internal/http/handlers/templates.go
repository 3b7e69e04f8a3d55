package handlers

import (
	"embed"
	"encoding/base64"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type loginData struct {
	Lang  string
	T     map[string]string
	Error string
}

type studioData struct {
	Lang     string
	T        map[string]string
	Username string
	Error    string
	Results  []galleryItem
}

type galleryItem struct {
	Index   int
	Preview template.URL
}

// galleryItems renders session blobs as 1-based inline previews. Results live
// only in process memory, so previews are embedded as data URIs rather than
// served from a static path.
func galleryItems(results [][]byte) []galleryItem {
	items := make([]galleryItem, 0, len(results))
	for i, blob := range results {
		items = append(items, galleryItem{
			Index:   i + 1,
			Preview: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(blob)),
		})
	}
	return items
}
