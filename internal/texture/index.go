package texture

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Index maps lowercase texture stems to files under the detail maps directory.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// Extensions are the texture file types indexed.
var Extensions = []string{".png", ".tga", ".tif", ".tiff", ".dds", ".exr", ".jpg", ".jpeg"}

// BuildIndex scans root and its subdirectories for texture files. The first
// file found for a stem wins; WalkDir visits in lexical order so the choice is
// stable between runs. Unreadable entries are logged and skipped. An
// unreadable root leaves the index empty.
func BuildIndex(root string, logger *zap.Logger) *Index {
	idx := &Index{entries: make(map[string]string)}
	if root == "" {
		return idx
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("detail maps entry skipped", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !isTexture(path) {
			return nil
		}
		stem := stemOf(path)
		if _, exists := idx.entries[stem]; !exists {
			idx.entries[stem] = path
		}
		return nil
	})
	if err != nil {
		logger.Warn("detail maps not indexed, every texture will be reported missing",
			zap.String("dir", root), zap.Error(err))
	}

	return idx
}

func isTexture(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ResolvePath returns the filesystem path for a texture reference, or ("", false).
// References are matched by file stem only, since swatches carry game-side
// paths (e.g. "shaders\detail\foo_gradient.png") rather than local ones.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := texName
	if i := strings.LastIndex(texName, "/"); i >= 0 {
		base = texName[i+1:]
	}
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		return "", false
	}

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
