// This file contains fixed-field C-string decoding, modeled after
// repparser.cString/koreanString: validate as UTF-8 first, and fall
// back to a legacy single-byte codepage transform if that fails. Source
// demos carry Windows-1252 (not Korean EUC-KR) as their legacy encoding.

package demoparser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// cString returns the NUL-terminated string held in data, recovering via
// Windows-1252 if the bytes up to the NUL are not valid UTF-8.
func cString(data []byte) string {
	end := len(data)
	for i, c := range data {
		if c == 0 {
			end = i
			break
		}
	}
	raw := data[:end]

	if utf8.Valid(raw) {
		return string(raw)
	}
	return legacyString(raw)
}

// legacyString decodes raw as Windows-1252, stripping any residual NUL
// or replacement-character noise left over from a failed transform.
func legacyString(raw []byte) string {
	dec := charmap.Windows1252.NewDecoder()
	s, _, err := transform.String(dec, string(raw))
	if err != nil {
		return string(raw)
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "�", "")
	return s
}
