package stack

import (
	"strconv"
	"strings"
)

// pointerGlyph marks the chain position belonging to the body being rendered.
const pointerGlyph = "👉 "

// cutset for the blank-line trimming around the marker pair.
const blank = " \t\r\n"

func markerStart(key string) string { return "<!--" + key + ":start-->" }
func markerEnd(key string) string   { return "<!--" + key + ":end-->" }

// RenderSection renders the machine-owned stack section: one line per chain
// position holding the pull request number, the current position carrying the
// pointer glyph, wrapped in the marker pair for the given key. Pure and
// deterministic.
func RenderSection(markerKey string, numbers []int, currentIndex int) string {
	var sb strings.Builder
	sb.WriteString(markerStart(markerKey))
	sb.WriteByte('\n')
	for i, num := range numbers {
		sb.WriteString("- ")
		if i == currentIndex {
			sb.WriteString(pointerGlyph)
		}
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(num))
		sb.WriteByte('\n')
	}
	sb.WriteString(markerEnd(markerKey))
	return sb.String()
}

// UpsertSection inserts or replaces the marker-delimited section in body.
// When a well-formed marker pair exists (start before end) everything from
// start through end is replaced and the surrounding text is rejoined with
// exactly one blank line on each side. Markers that are absent or malformed
// are treated as no section at all: the new section is prepended and the
// existing content follows untouched. Idempotent for a fixed section input.
func UpsertSection(body, markerKey, section string) string {
	start := markerStart(markerKey)
	end := markerEnd(markerKey)

	si := strings.Index(body, start)
	ei := strings.Index(body, end)
	if si >= 0 && ei >= 0 && si < ei {
		before := strings.TrimRight(body[:si], blank)
		after := strings.TrimLeft(body[ei+len(end):], blank)

		parts := make([]string, 0, 3)
		if before != "" {
			parts = append(parts, before)
		}
		parts = append(parts, section)
		if after != "" {
			parts = append(parts, after)
		}
		return strings.Join(parts, "\n\n")
	}

	existing := strings.TrimSpace(body)
	if existing == "" {
		return section
	}
	return section + "\n\n" + existing
}
