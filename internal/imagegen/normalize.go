package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"

	"sketchstudio/internal/domain"
)

// NormalizePNG decodes an uploaded sketch (PNG/JPEG/WebP/GIF) and re-encodes
// it as a PNG with an alpha channel, the canonical format the edit endpoint
// accepts.
func NormalizePNG(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, domain.ErrMissingImage
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeImage, err)
	}
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeImage, err)
	}
	return buf.Bytes(), nil
}
