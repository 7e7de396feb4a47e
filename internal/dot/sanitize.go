package dot

import "strings"

// sanitizeReplacer escapes the characters special to DOT record labels and
// collapses embedded line breaks to spaces.
var sanitizeReplacer = strings.NewReplacer(
	`"`, `\"`,
	"|", `\|`,
	"\n", " ",
	"\r", " ",
)

// sanitizeLabel makes arbitrary text safe for a DOT record label. Text longer
// than maxLen runes after escaping is cut to maxLen-3 runes plus "...".
func sanitizeLabel(label string, maxLen int) string {
	label = sanitizeReplacer.Replace(label)
	if maxLen > 3 {
		if runes := []rune(label); len(runes) > maxLen {
			label = string(runes[:maxLen-3]) + "..."
		}
	}
	return label
}
