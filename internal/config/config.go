package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	pathsSection  = "Paths"
	detailMapsKey = "detailMaps"
	outputKey     = "output"
)

// Paths are taken verbatim. Windows folders may end in a backslash or contain
// ':' and '#', none of which may be read as ini syntax.
var loadOptions = ini.LoadOptions{
	IgnoreContinuation:  true,
	IgnoreInlineComment: true,
	KeyValueDelimiters:  "=",
}

// Config holds the two path settings kept in cache.ini.
type Config struct {
	// Paths
	DetailMaps string // directory of shared detail textures, may stay empty
	OutputDir  string // root directory for generated scripts

	path string
	file *ini.File
}

// Load reads the [Paths] section of a cache file.
// A missing file yields an empty config; the file is created when the
// output folder prompt is answered.
func Load(path string) (*Config, error) {
	cfg := &Config{path: path}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg.file = ini.Empty(loadOptions)
		return cfg, nil
	}

	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.file = f

	sec := f.Section(pathsSection)
	cfg.DetailMaps = strings.TrimSpace(sec.Key(detailMapsKey).String())
	cfg.OutputDir = strings.TrimSpace(sec.Key(outputKey).String())

	return cfg, nil
}

// Path returns the cache file location.
func (c *Config) Path() string {
	return c.path
}

// persist sets key/value pairs in [Paths] and writes the file. Other sections
// and keys already in the file are preserved.
func (c *Config) persist(kv ...string) error {
	if c.file == nil {
		c.file = ini.Empty(loadOptions)
	}
	sec := c.file.Section(pathsSection)
	for i := 0; i+1 < len(kv); i += 2 {
		sec.Key(kv[i]).SetValue(kv[i+1])
	}

	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := c.file.SaveTo(c.path); err != nil {
		return fmt.Errorf("config: write %s: %w", c.path, err)
	}
	return nil
}

// Flags holds CLI flag values that override the cache file for one run.
type Flags struct {
	DetailMaps string
	OutputDir  string
}

// Resolve applies flag overrides for this run only. They are never written
// back to the cache file.
func (c *Config) Resolve(flags Flags) {
	if flags.DetailMaps != "" {
		c.DetailMaps = flags.DetailMaps
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
}

// EnsureOutput asks for an output directory when none is configured and
// persists only that answer, so flag overrides stay out of the cache file.
// Detail maps are never prompted for: they are optional.
func (c *Config) EnsureOutput(in io.Reader, out io.Writer) error {
	if c.OutputDir != "" {
		return nil
	}

	fmt.Fprintln(out, c.path)
	fmt.Fprintln(out, "Output location in cache.ini is empty. Please give a folder:")
	fmt.Fprint(out, "> ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: read output folder: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return errors.New("config: no output folder given")
	}

	c.OutputDir = answer
	return c.persist(outputKey, answer)
}
