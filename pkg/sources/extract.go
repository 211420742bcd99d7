package sources

import "strings"

// ExtractBetween returns the substring of text between the end of the first
// occurrence of start (at or after from) and the next occurrence of end. The
// second return is false when either marker is missing.
//
// This is opaque marker extraction over unstructured response text, not
// parsing. The markers are fixed literals tied to the current shape of the
// upstream pages; if the markup shifts, extraction fails closed rather than
// erroring.
func ExtractBetween(text, start, end string, from int) (string, bool) {
	if from < 0 || from > len(text) {
		return "", false
	}
	i := strings.Index(text[from:], start)
	if i < 0 {
		return "", false
	}
	begin := from + i + len(start)
	j := strings.Index(text[begin:], end)
	if j < 0 {
		return "", false
	}
	return text[begin : begin+j], true
}

// digitRun returns the maximal run of decimal digits starting at from.
func digitRun(text string, from int) string {
	i := from
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	return text[from:i]
}
