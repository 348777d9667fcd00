// Package filename turns note and notebook titles into portable file names.
package filename

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxBytes is the longest name most file systems accept.
const MaxBytes = 255

// Fallback replaces a name that sanitizes to nothing.
const Fallback = "untitled"

var (
	illegalRe         = regexp.MustCompile(`[/?<>\\:*|"]`)
	controlRe         = regexp.MustCompile(`[\x00-\x1f\x80-\x9f]`)
	reservedRe        = regexp.MustCompile(`^\.+$`)
	windowsReservedRe = regexp.MustCompile(`(?i)^(con|prn|aux|nul|com[0-9]|lpt[0-9])(\..*)?$`)
	windowsTrailingRe = regexp.MustCompile(`[. ]+$`)
)

// Sanitize strips characters and names that are not valid in file names on
// common platforms and truncates the result to MaxBytes.
func Sanitize(name string) string {
	s := illegalRe.ReplaceAllString(name, "")
	s = controlRe.ReplaceAllString(s, "")
	s = reservedRe.ReplaceAllString(s, "")
	s = windowsReservedRe.ReplaceAllString(s, "")
	s = windowsTrailingRe.ReplaceAllString(s, "")
	s = truncate(s, MaxBytes)
	if s == "" {
		return Fallback
	}
	return s
}

// Folder converts a notebook name into a single folder name. Slashes become
// dashes so a name never nests directories.
func Folder(name string) string {
	return Sanitize(strings.ReplaceAll(name, "/", "-"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
