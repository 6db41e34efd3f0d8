package probe

import (
	"regexp"
)

const ellipsis = "..."

// Clean turns raw version output into the text shown next to a tool name.
//
// A leading copy of name, optionally followed by a parenthesized note, is
// removed ("curl (x86_64) 7.68.0" -> "7.68.0"). The remainder is then cut
// to maxWidth runes, ending in "...", when it is longer than maxWidth.
func Clean(name, version string, maxWidth int) string {
	return Truncate(StripName(name, version), maxWidth)
}

// StripName removes a case-sensitive leading occurrence of name, an optional
// "(...)" annotation and the whitespace around them.
func StripName(name, version string) string {
	if name == "" {
		return version
	}
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `\s*(\([^)]*\))?\s*`)
	loc := re.FindStringIndex(version)
	if loc == nil {
		return version
	}
	return version[loc[1]:]
}

// Truncate shortens s to exactly maxWidth runes when it is longer, keeping
// the first maxWidth-3 runes and appending "...". A maxWidth of zero or less
// disables truncation.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	keep := maxWidth - len(ellipsis)
	if keep <= 0 {
		return string(runes[:maxWidth])
	}
	return string(runes[:keep]) + ellipsis
}
