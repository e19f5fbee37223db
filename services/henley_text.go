package services

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// HenleyPDFEntry is one destination row extracted from an HPI PDF, before
// ISO resolution.
type HenleyPDFEntry struct {
	Destination     string
	RequirementText string
	RequiresVisa    bool
}

// HenleyStrategy extracts destination entries from one origin PDF. Both the
// text-layout and the pixel-glyph strategies implement it; they are
// interchangeable implementations of the same contract.
type HenleyStrategy interface {
	Extract(data []byte, origin HenleyOrigin) (entries []HenleyPDFEntry, pdfDate string, err error)
}

// RequirementMarker pairs a requirement phrase with its meaning. Markers are
// evaluated by earliest match position within a segment; the list order
// breaks ties.
type RequirementMarker struct {
	Pattern      *regexp.Regexp
	RequiresVisa bool
}

var henleyRequirementMarkers = []RequirementMarker{
	{regexp.MustCompile(`(?i)visa[-\s]?free`), false},
	{regexp.MustCompile(`(?i)visa not required`), false},
	{regexp.MustCompile(`(?i)no visa required`), false},
	{regexp.MustCompile(`(?i)visa waiver`), false},
	{regexp.MustCompile(`(?i)visa on arrival`), true},
	{regexp.MustCompile(`(?i)e-?visa`), true},
	{regexp.MustCompile(`(?i)visa required`), true},
}

var henleyDateRegex = regexp.MustCompile(`(?i)(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})`)

var henleyMonths = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// lineGroupTolerance is the vertical distance (PDF points) within which two
// text spans belong to the same visual line.
const lineGroupTolerance = 2.0

// columnGapWidth is the horizontal whitespace (PDF points) that separates
// two columns of the same visual line.
const columnGapWidth = 16.0

type textSpan struct {
	x, y, w float64
	s       string
}

type textLine struct {
	y     float64
	spans []textSpan
}

// TextLayoutExtractor implements the text-layout strategy: spans are grouped
// into visual lines by vertical proximity, lines are split into columns on
// large horizontal gaps, and each segment is matched against the requirement
// markers.
type TextLayoutExtractor struct{}

// Extract parses every page of the PDF.
func (e *TextLayoutExtractor) Extract(data []byte, _ HenleyOrigin) ([]HenleyPDFEntry, string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var entries []HenleyPDFEntry
	var allText strings.Builder

	for pageNumber := 1; pageNumber <= reader.NumPage(); pageNumber++ {
		page := reader.Page(pageNumber)
		if page.V.IsNull() {
			continue
		}

		lines := groupTextSpans(page.Content().Text)
		for _, line := range lines {
			allText.WriteString(lineText(line))
			allText.WriteByte('\n')

			for _, segment := range splitLineSegments(line) {
				if parsed, ok := parseRequirementSegment(segment); ok {
					entries = append(entries, parsed)
				}
			}
		}
	}

	return entries, extractHenleyDate(allText.String()), nil
}

// groupTextSpans clusters raw text spans into visual lines: same line when
// the vertical distance is below the tolerance, ordered top of page first,
// spans left to right.
func groupTextSpans(texts []pdf.Text) []textLine {
	var lines []textLine

	for _, t := range texts {
		s := strings.TrimSpace(t.S)
		if s == "" {
			continue
		}

		span := textSpan{x: t.X, y: t.Y, w: t.W, s: s}
		placed := false
		for i := range lines {
			if math.Abs(lines[i].y-t.Y) < lineGroupTolerance {
				lines[i].spans = append(lines[i].spans, span)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, textLine{y: t.Y, spans: []textSpan{span}})
		}
	}

	// PDF coordinates grow upward, so higher y comes first.
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })
	for i := range lines {
		spans := lines[i].spans
		sort.SliceStable(spans, func(a, b int) bool { return spans[a].x < spans[b].x })
	}
	return lines
}

func lineText(line textLine) string {
	parts := make([]string, 0, len(line.spans))
	for _, span := range line.spans {
		parts = append(parts, span.s)
	}
	return innerWhitespace.ReplaceAllString(strings.Join(parts, " "), " ")
}

// splitLineSegments breaks one visual line into column segments wherever a
// horizontal gap exceeds columnGapWidth.
func splitLineSegments(line textLine) []string {
	var segments []string
	var current []string
	var prevEnd float64
	started := false

	for _, span := range line.spans {
		if started && span.x-prevEnd > columnGapWidth {
			if seg := strings.TrimSpace(strings.Join(current, " ")); seg != "" {
				segments = append(segments, seg)
			}
			current = current[:0]
		}
		current = append(current, span.s)
		prevEnd = span.x + span.w
		started = true
	}
	if seg := strings.TrimSpace(strings.Join(current, " ")); seg != "" {
		segments = append(segments, seg)
	}
	return segments
}

// parseRequirementSegment matches a column segment against the requirement
// markers. The earliest match wins; everything before it is the destination
// name, everything from it on the requirement text.
func parseRequirementSegment(segment string) (HenleyPDFEntry, bool) {
	normalized := strings.TrimSpace(innerWhitespace.ReplaceAllString(segment, " "))
	if normalized == "" {
		return HenleyPDFEntry{}, false
	}

	bestIndex := -1
	var bestMarker RequirementMarker
	for _, marker := range henleyRequirementMarkers {
		loc := marker.Pattern.FindStringIndex(normalized)
		if loc == nil {
			continue
		}
		if bestIndex == -1 || loc[0] < bestIndex {
			bestIndex = loc[0]
			bestMarker = marker
		}
	}
	if bestIndex <= 0 {
		return HenleyPDFEntry{}, false
	}

	destination := strings.TrimSpace(normalized[:bestIndex])
	requirementText := strings.TrimSpace(normalized[bestIndex:])
	if destination == "" || requirementText == "" {
		return HenleyPDFEntry{}, false
	}

	return HenleyPDFEntry{
		Destination:     destination,
		RequirementText: requirementText,
		RequiresVisa:    bestMarker.RequiresVisa,
	}, true
}

// extractHenleyDate finds the publication date printed inside the PDF
// ("14 January 2025") and returns it as YYYY-MM-DD, or "".
func extractHenleyDate(text string) string {
	match := henleyDateRegex.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	month, ok := henleyMonths[strings.ToLower(match[2])]
	if !ok {
		return ""
	}
	day, err := strconv.Atoi(match[1])
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s-%02d-%02d", match[3], month, day)
}
