package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestName is the manifest file written next to the scripts.
const ManifestName = "manifest.json"

// Manifest lists the files generated for one coating.
type Manifest struct {
	Coating string          `json:"coating"`
	Regions []ManifestEntry `json:"regions"`
}

// ManifestEntry represents one region in the output manifest.
type ManifestEntry struct {
	Region   string   `json:"region"`
	Material string   `json:"material"`
	BodyPart string   `json:"body_part,omitempty"`
	Mask     string   `json:"mask"`
	Swatches []string `json:"swatches"` // per slot, slot 1 first
	Script   string   `json:"script"`
	Preview  string   `json:"preview,omitempty"`
}

// WriteManifest writes manifest.json. File paths are stored relative to the
// manifest's directory.
func WriteManifest(path, coatingName string, results []Result) error {
	m := Manifest{Coating: coatingName, Regions: make([]ManifestEntry, len(results))}
	for i, r := range results {
		swatches := make([]string, len(r.Slots))
		for j, s := range r.Slots {
			swatches[j] = s.SwatchID
		}
		m.Regions[i] = ManifestEntry{
			Region:   r.Region,
			Material: r.Material,
			BodyPart: r.BodyPart,
			Mask:     r.Mask.String(),
			Swatches: swatches,
			Script:   filepath.Base(r.ScriptPath),
		}
		if r.PreviewPath != "" {
			m.Regions[i].Preview = filepath.Base(r.PreviewPath)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
