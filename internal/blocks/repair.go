package blocks

import "strings"

// Repair heuristics: best-effort transformations applied when expected
// structured data is missing, so an otherwise-usable item is not discarded.
// Every heuristic is lossy-averse — when it cannot recover enough data for
// the variant's minimum shape, the caller fails closed instead of emitting
// a fabricated block.

// splitSequence re-derives an ordered list from prose. Newline-separated
// fragments win; when the text is a single line, sentences are used.
// Returns nil when fewer than 2 fragments can be recovered.
func splitSequence(text string) []string {
	lines := splitClean(text, "\n")
	if len(lines) >= 2 {
		return lines
	}

	sentences := splitSentences(text)
	if len(sentences) >= 2 {
		return sentences
	}
	return nil
}

// splitSentences breaks prose into sentences on terminal punctuation.
func splitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '?' || r == '!' {
			if s := strings.TrimSpace(cur.String()); len(s) > 1 {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); len(s) > 1 {
		out = append(out, s)
	}
	return out
}

// parseBullets extracts bullet-marked lines from prose. Used to recover
// categorization items from a question that embeds its item list as text.
// A line with a "item: category" or "item - category" shape yields both
// parts; otherwise the category is left empty for the caller to assign.
func parseBullets(text string) []CategorizedItem {
	var out []CategorizedItem
	// Split raw lines here: splitClean would strip the markers before this
	// function could see them.
	for _, line := range strings.Split(text, "\n") {
		stripped, bulleted := stripBullet(line)
		if !bulleted {
			continue
		}
		item := CategorizedItem{Text: stripped}
		for _, sep := range []string{": ", " - "} {
			if idx := strings.Index(stripped, sep); idx > 0 {
				item.Text = strings.TrimSpace(stripped[:idx])
				item.Category = strings.TrimSpace(stripped[idx+len(sep):])
				break
			}
		}
		if item.Text != "" {
			out = append(out, item)
		}
	}
	return out
}

// stripBullet removes a leading bullet or numbering marker from a line.
// The second return reports whether the line was marked at all.
func stripBullet(line string) (string, bool) {
	s := strings.TrimSpace(line)
	for _, marker := range []string{"- ", "* ", "• ", "– "} {
		if strings.HasPrefix(s, marker) {
			return strings.TrimSpace(strings.TrimPrefix(s, marker)), true
		}
	}
	// Numbered lists: "1. item" or "2) item".
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if i > 0 && (r == '.' || r == ')') {
			rest := strings.TrimSpace(s[i+1:])
			if rest != "" {
				return rest, true
			}
		}
		break
	}
	return s, false
}

// extractBracketed recovers fill-in-blank answers from a passage written
// as "The [mitochondria] is the powerhouse": bracketed words become the
// answers and are replaced with blank markers in the returned text.
func extractBracketed(text string) (string, []string) {
	var answers []string
	var b strings.Builder
	rest := text
	for {
		open := strings.Index(rest, "[")
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open:], "]")
		if closing < 0 {
			break
		}
		answer := strings.TrimSpace(rest[open+1 : open+closing])
		if answer == "" {
			break
		}
		answers = append(answers, answer)
		b.WriteString(rest[:open])
		b.WriteString("___")
		rest = rest[open+closing+1:]
	}
	b.WriteString(rest)
	return b.String(), answers
}

// splitClean splits on sep and drops empty fragments after trimming,
// removing bullet markers along the way.
func splitClean(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		stripped, _ := stripBullet(part)
		if stripped != "" {
			out = append(out, stripped)
		}
	}
	return out
}
