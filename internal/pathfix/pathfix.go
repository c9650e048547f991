// Package pathfix makes arbitrary coating and region names safe to use as file names.
package pathfix

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// WindowsInvalid are the characters Windows rejects in file names.
var WindowsInvalid = func() []rune {
	out := []rune{'"', '<', '>', '|'}
	for r := rune(0); r < 0x20; r++ {
		out = append(out, r)
	}
	return append(out, ':', '*', '?', '\\', '/')
}()

// UnixInvalid are the characters other hosts reject in file names.
var UnixInvalid = []rune{0, '/'}

// Sanitizer replaces invalid file-name characters with underscores.
type Sanitizer struct {
	re *regexp.Regexp
}

// NewSanitizer builds a sanitizer for the given invalid characters.
func NewSanitizer(invalid []rune) *Sanitizer {
	var class strings.Builder
	for _, r := range invalid {
		if r < 0x20 || r == 0x7f {
			fmt.Fprintf(&class, `\x{%x}`, r)
			continue
		}
		class.WriteString(regexp.QuoteMeta(string(r)))
	}
	c := class.String()
	// Runs of invalid characters collapse to one underscore; so does a trailing
	// run of dots together with any invalid characters right before it.
	return &Sanitizer{re: regexp.MustCompile(fmt.Sprintf(`([%s]*\.+$)|([%s]+)`, c, c))}
}

// Sanitize returns name with every invalid run replaced by "_".
func (s *Sanitizer) Sanitize(name string) string {
	return s.re.ReplaceAllString(name, "_")
}

var host = func() *Sanitizer {
	if runtime.GOOS == "windows" {
		return NewSanitizer(WindowsInvalid)
	}
	return NewSanitizer(UnixInvalid)
}()

// SanitizeName sanitizes name for the host file system.
func SanitizeName(name string) string {
	return host.Sanitize(name)
}
