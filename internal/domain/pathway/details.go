package pathway

import "strings"

// FormatDetails renders details as one entry per line for a free-text field.
func FormatDetails(details []string) string {
	return strings.Join(details, "\n")
}

// ParseDetails turns free text back into details: split on line breaks, trim
// every line, drop the empty ones. Never returns nil.
func ParseDetails(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
