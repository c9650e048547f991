package config

import (
	"os"
	"path/filepath"
)

// Resource file names looked up in the resources directory.
const (
	CacheFile    = "cache.ini"
	GroupsFile   = "groups.ini"
	TemplateFile = "template.py"
)

// ResourcesDir returns the Resources directory shipped next to the
// executable, falling back to ./Resources.
func ResourcesDir() string {
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Join(filepath.Dir(exe), "Resources")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	cwd, _ := os.Getwd()
	return filepath.Join(cwd, "Resources")
}
