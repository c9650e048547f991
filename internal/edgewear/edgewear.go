// Package edgewear resolves a swatch group name to the multiplier applied to
// the coating's scratch amount. The table comes from the [scratches] section of
// groups.ini: 1 keeps edge wear as authored, 0 disables it, larger values
// exaggerate it.
package edgewear

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

// Section is the groups.ini section holding edge-wear factors.
const Section = "scratches"

// DefaultFactor applies to groups missing from the table.
const DefaultFactor = 1

var (
	// ErrMalformedValue indicates a table entry is not an integer.
	ErrMalformedValue = errors.New("malformed edge-wear value")

	// ErrUnknownGroup marks a group missing from the table. It is reported as a
	// warning and never returned from Resolve.
	ErrUnknownGroup = errors.New("unknown edge-wear group")
)

// Table maps group names to raw factor strings. Values are parsed on lookup so
// a bad entry only fails the runs that actually use it.
type Table map[string]string

// LoadTable reads the [scratches] section of an INI file.
func LoadTable(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edgewear: read %s: %w", path, err)
	}

	t, err := ParseTable(raw)
	if err != nil {
		return nil, fmt.Errorf("edgewear: parse %s: %w", path, err)
	}
	return t, nil
}

// Group names may contain ':' and '#', so only '=' separates key and value
// and only ';' starts an inline comment.
var loadOptions = ini.LoadOptions{
	IgnoreContinuation:  true,
	IgnoreInlineComment: true,
	KeyValueDelimiters:  "=",
}

// ParseTable reads the [scratches] section from INI source.
func ParseTable(raw []byte) (Table, error) {
	f, err := ini.LoadSources(loadOptions, raw)
	if err != nil {
		return nil, err
	}

	t := make(Table)
	if !f.HasSection(Section) {
		return t, nil
	}
	for _, k := range f.Section(Section).Keys() {
		v, _, _ := strings.Cut(k.Value(), ";")
		t[k.Name()] = strings.TrimSpace(v)
	}
	return t, nil
}

// Resolve returns the factor for group. Unknown groups resolve to
// DefaultFactor and are logged; a present but non-integer value is an error.
func (t Table) Resolve(group string, logger *zap.Logger) (int, error) {
	raw, ok := t[group]
	if !ok {
		if logger != nil {
			logger.Warn("unknown group in swatch, edge wear left at default",
				zap.String("group", group),
				zap.Int("factor", DefaultFactor),
				zap.NamedError("diagnostic", ErrUnknownGroup))
		}
		return DefaultFactor, nil
	}

	factor, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("edgewear: %w: group %q has value %q", ErrMalformedValue, group, raw)
	}
	return factor, nil
}
