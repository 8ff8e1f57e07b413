// Package chunker splits converted Markdown into ordered reading-size chunks.
//
// Splitting is deterministic and happens only at line boundaries, so joining
// the chunks with "\n" always reproduces the cleaned input exactly.
package chunker

import "strings"

// DefaultChunkSize is the fallback target chunk size in runes.
const DefaultChunkSize = 3000

// Clean normalizes raw Markdown returned by the conversion API: trims every
// line, drops blank lines, and strips carriage returns, NUL escapes and
// replacement characters left over from lossy decoding.
func Clean(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	cleaned := strings.Join(lines, "\n")
	replacer := strings.NewReplacer("\\u0000", "", "\x00", "", "�", "", "\r", "")
	return replacer.Replace(cleaned)
}

// Split breaks Markdown text into ordered chunks.
//
// When the text contains level-1 headings, each "# " heading starts a new
// chunk so sections stay intact. Otherwise whole lines are accumulated until
// adding the next line would exceed chunkSize runes. Empty input yields no
// chunks.
func Split(text string, chunkSize int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	lines := strings.Split(text, "\n")
	if hasLevel1Heading(lines) {
		return splitByHeadings(lines)
	}
	return splitBySize(lines, chunkSize)
}

func hasLevel1Heading(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			return true
		}
	}
	return false
}

// splitByHeadings groups lines into one chunk per level-1 section. Lines
// before the first heading form a chunk of their own.
func splitByHeadings(lines []string) []string {
	var chunks []string
	var current []string

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = current[:0]
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}

// splitBySize accumulates whole lines until the next line would push the
// chunk past chunkSize runes. A single oversized line still becomes its own
// chunk rather than being cut mid-line.
func splitBySize(lines []string, chunkSize int) []string {
	var chunks []string
	var current []string
	length := 0

	for _, line := range lines {
		lineLen := len([]rune(line))
		if length > 0 && length+lineLen > chunkSize {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = current[:0]
			length = 0
		}
		current = append(current, line)
		length += lineLen
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}
