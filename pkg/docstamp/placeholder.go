package docstamp

import "strings"

// Placeholder is one occurrence of a placeholder token found in a
// paragraph's aggregated text.
type Placeholder struct {
	// Name is the text between the delimiters, with edge whitespace removed.
	Name string
	// Raw is the full token including delimiters, exactly as it appears in
	// the text. Replacements are applied against Raw.
	Raw string
}

// FindPlaceholders scans text for placeholder tokens delimited by prefix
// and suffix (for example "${" and "}") and returns them in order of
// appearance. A prefix without a closing suffix ends the scan; the
// unclosed remainder is not reported.
func FindPlaceholders(text, prefix, suffix string) []Placeholder {
	var found []Placeholder
	pos := 0
	for {
		start := strings.Index(text[pos:], prefix)
		if start < 0 {
			break
		}
		start += pos
		rest := start + len(prefix)
		end := strings.Index(text[rest:], suffix)
		if end < 0 {
			break
		}
		end += rest
		found = append(found, Placeholder{
			Name: strings.TrimSpace(text[rest:end]),
			Raw:  text[start : end+len(suffix)],
		})
		pos = end + len(suffix)
	}
	return found
}
