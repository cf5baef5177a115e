package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMaxSide is the longest edge sent to the model; flyers stay legible at this size.
const DefaultMaxSide = 1600

// Processor shrinks oversized photos before they leave the server.
type Processor struct {
	quality int // JPEG quality (1-100)
	maxSide int
}

func NewProcessor(quality, maxSide int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	return &Processor{
		quality: quality,
		maxSide: maxSide,
	}
}

// Fit returns the image unchanged when it already fits, otherwise a downscaled JPEG.
// Formats the standard decoders cannot read (HEIC) are passed through as-is.
func (p *Processor) Fit(data []byte, mimeType string) ([]byte, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return data, mimeType, nil
	}
	if cfg.Width <= p.maxSide && cfg.Height <= p.maxSide {
		return data, mimeType, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img, p.maxSide, p.maxSide)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// resize scales img into maxWidth x maxHeight keeping the aspect ratio.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
