package services

import (
	"bytes"
	"fmt"
	"image"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// PageRasterizer renders PDF pages to bitmaps. scale multiplies the base
// 72 DPI resolution, so a scale of 2 renders one PDF point as two pixels.
type PageRasterizer interface {
	RasterizePages(data []byte, scale float64) ([]image.Image, error)
}

// FitzRasterizer rasterizes through MuPDF.
type FitzRasterizer struct{}

func (FitzRasterizer) RasterizePages(data []byte, scale float64) ([]image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rasterization: %w", err)
	}
	defer doc.Close()

	images := make([]image.Image, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImageDPI(n, 72*scale)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize page %d: %w", n+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// pixelSkipLine filters out header, footer and legend rows that would
// otherwise be mistaken for destination names.
var pixelSkipLine = regexp.MustCompile(`(?i)^(page\s|\d+$|henley|passport|index|visa|destination|access|rank|score|www\.|https?:)`)

// PixelGlyphExtractor implements the pixel-glyph strategy for PDFs whose
// requirement column is an icon instead of text. The text layer still yields
// destination names and line positions; the icon box to the right of each
// name is rasterized and inspected for a dark diagonal stroke (the
// "visa required" cross).
type PixelGlyphExtractor struct {
	Rasterizer PageRasterizer
	Thresholds GlyphThresholds
}

func NewPixelGlyphExtractor(thresholds GlyphThresholds) *PixelGlyphExtractor {
	return &PixelGlyphExtractor{Rasterizer: FitzRasterizer{}, Thresholds: thresholds}
}

func (e *PixelGlyphExtractor) Extract(data []byte, _ HenleyOrigin) ([]HenleyPDFEntry, string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages, err := e.Rasterizer.RasterizePages(data, e.Thresholds.Scale)
	if err != nil {
		return nil, "", err
	}

	var entries []HenleyPDFEntry
	var allText strings.Builder

	for pageNumber := 1; pageNumber <= reader.NumPage(); pageNumber++ {
		page := reader.Page(pageNumber)
		if page.V.IsNull() || pageNumber > len(pages) {
			continue
		}
		bitmap := pages[pageNumber-1]
		pageHeight := float64(bitmap.Bounds().Dy()) / e.Thresholds.Scale

		for _, line := range groupTextSpans(page.Content().Text) {
			text := lineText(line)
			allText.WriteString(text)
			allText.WriteByte('\n')

			if !looksLikeDestinationRow(text) {
				continue
			}

			box := cropIconBox(bitmap, line, pageHeight, e.Thresholds)
			if box == nil {
				continue
			}
			required := DetectRequiredGlyph(box, e.Thresholds)
			entries = append(entries, HenleyPDFEntry{
				Destination:     text,
				RequirementText: "icon",
				RequiresVisa:    required,
			})
		}
	}

	return entries, extractHenleyDate(allText.String()), nil
}

// looksLikeDestinationRow keeps lines that plausibly hold a destination
// name: mostly letters, not a header or legend row.
func looksLikeDestinationRow(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || pixelSkipLine.MatchString(trimmed) {
		return false
	}
	letters := 0
	for _, r := range trimmed {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r > 127 {
			letters++
		}
	}
	return letters >= 3 && letters*2 >= len(trimmed)
}

// cropIconBox copies the icon region to the right of a text line out of the
// rasterized page: IconOffsetX points past the rightmost span, IconBoxSize
// points square, centered on the line's baseline. Returns nil when the box
// falls outside the page.
func cropIconBox(page image.Image, line textLine, pageHeight float64, t GlyphThresholds) image.Image {
	var maxX float64
	for _, span := range line.spans {
		if end := span.x + span.w; end > maxX {
			maxX = end
		}
	}

	size := int(float64(t.IconBoxSize) * t.Scale)
	x0 := int((maxX + float64(t.IconOffsetX)) * t.Scale)
	centerY := (pageHeight - line.y) * t.Scale
	y0 := int(centerY) - size/2

	bounds := page.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	x1 := x0 + size
	y1 := y0 + size
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}
	if x1-x0 < size/2 || y1-y0 < size/2 {
		return nil
	}

	crop := image.NewRGBA(image.Rect(0, 0, x1-x0, y1-y0))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			crop.Set(x-x0, y-y0, page.At(x, y))
		}
	}
	return crop
}

// DetectRequiredGlyph reports whether the icon box contains the dark
// diagonal cross used for "visa required". Two conditions must hold: enough
// of the box is dark at all, and enough of the DARK pixels sit within one
// pixel of one of the two diagonals. A solid dark block fails the second
// condition; a thin diagonal stroke passes both.
func DetectRequiredGlyph(img image.Image, t GlyphThresholds) bool {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return false
	}

	dark := 0
	diagonalDark := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
			if luminance >= t.DarkLuminance {
				continue
			}
			dark++
			if absInt(x-y) <= 1 || absInt(x-(w-1-y)) <= 1 {
				diagonalDark++
			}
		}
	}

	if dark == 0 {
		return false
	}
	darkRatio := float64(dark) / float64(w*h)
	diagonalScore := float64(diagonalDark) / float64(dark)
	return darkRatio >= t.MinDarkRatio && diagonalScore >= t.MinDiagonalScore
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
