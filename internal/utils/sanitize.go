package utils

import (
	"strings"
)

const maxFilenameLen = 100

var filenameReplacer = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	"*", "_",
	"?", "_",
	":", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFilename makes user text safe to use in an attachment filename:
// filesystem-reserved characters become "_" and the result is capped at 100
// characters. Filename use only; payload content is never sanitized.
func SanitizeFilename(name string) string {
	s := filenameReplacer.Replace(name)
	if len(s) > maxFilenameLen {
		s = s[:maxFilenameLen]
	}
	return s
}
