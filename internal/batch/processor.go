package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"infinite-coating-tool/internal/coating"
	"infinite-coating-tool/internal/edgewear"
	"infinite-coating-tool/internal/layermask"
	"infinite-coating-tool/internal/pathfix"
	"infinite-coating-tool/internal/preview"
	"infinite-coating-tool/internal/script"
	"infinite-coating-tool/internal/texture"
)

// ScriptExt is the extension of generated region scripts.
const ScriptExt = ".py"

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	CoatingName string // used for file names and the COATINGNAME token
	DetailMaps  string
	Template    string
	EdgeWear    edgewear.Table
	Preview     preview.Format
	Textures    *texture.Index // nil skips the missing-texture check
	Logger      *zap.Logger
}

// Result holds the outcome of processing one region.
type Result struct {
	Region   string
	Material string
	BodyPart string
	Mask     layermask.Mask
	Slots    [layermask.Slots]script.Slot
	Script   string

	// Set by Write.
	ScriptPath  string
	PreviewPath string
}

// CoatingDir returns the directory a coating's scripts are written to.
func CoatingDir(outputDir, coatingName string) string {
	return filepath.Join(outputDir, pathfix.SanitizeName(coatingName))
}

// ScriptName returns the file name of a region's script.
func ScriptName(coatingName, region string) string {
	return pathfix.SanitizeName(coatingName + "_" + region + ScriptExt)
}

// Run renders every region and writes the scripts, previews and manifest.
// Nothing is written unless every region renders.
func Run(cfg Config, doc *coating.Coating) ([]Result, error) {
	results, err := Render(cfg, doc)
	if err != nil {
		return nil, err
	}
	if err := Write(cfg, results); err != nil {
		return results, err
	}
	return results, nil
}

// Render fills the template for every region in document order. The first
// failing region aborts the whole batch.
func Render(cfg Config, doc *coating.Coating) ([]Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	filler, err := script.NewFiller(doc, cfg.EdgeWear, logger)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, doc.RegionLayers.Len())
	checked := make(map[string]bool)
	for name, region := range doc.RegionLayers.All() {
		rlog := logger.With(zap.String("region", name), zap.String("material", region.Material))

		mask, err := layermask.Resolve(region.Material)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}

		f := *filler
		f.Logger = rlog
		slots, err := f.Resolve(region, mask)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}

		text := script.FillHeader(cfg.Template, name, cfg.CoatingName, cfg.DetailMaps)
		text, err = f.FillSlots(slots, text)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}

		if cfg.Textures != nil {
			checkTextures(cfg.Textures, slots, checked, rlog)
		}

		rlog.Debug("region rendered",
			zap.Stringer("mask", mask),
			zap.Int("active_slots", mask.Count()),
			zap.Int("layers", len(region.Layers)))
		results = append(results, Result{
			Region:   name,
			Material: region.Material,
			BodyPart: region.BodyPart,
			Mask:     mask,
			Slots:    slots,
			Script:   text,
		})
	}

	return results, nil
}

// checkTextures warns once per texture reference that the detail maps
// directory cannot resolve.
func checkTextures(idx *texture.Index, slots [layermask.Slots]script.Slot, checked map[string]bool, logger *zap.Logger) {
	for _, s := range slots {
		for _, ref := range []string{s.Swatch.ColorGradientMap, s.Swatch.NormalPath} {
			if ref == "" || checked[ref] {
				continue
			}
			checked[ref] = true
			if _, ok := idx.ResolvePath(ref); !ok {
				logger.Warn("texture not found in detail maps",
					zap.String("swatch", s.Swatch.SwatchID),
					zap.String("texture", ref))
			}
		}
	}
}

// Write creates the coating directory and writes one script per region,
// the optional previews and manifest.json.
func Write(cfg Config, results []Result) error {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := CoatingDir(cfg.OutputDir, cfg.CoatingName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	seen := make(map[string]string)
	for i := range results {
		r := &results[i]
		name := ScriptName(cfg.CoatingName, r.Region)
		if prev, dup := seen[name]; dup {
			logger.Warn("regions share a file name, later one overwrites",
				zap.String("file", name), zap.String("region", r.Region), zap.String("previous", prev))
		}
		seen[name] = r.Region

		r.ScriptPath = filepath.Join(dir, name)
		if err := os.WriteFile(r.ScriptPath, []byte(r.Script), 0644); err != nil {
			return fmt.Errorf("batch: write %s: %w", r.ScriptPath, err)
		}

		if cfg.Preview != "" && cfg.Preview != preview.FormatNone {
			r.PreviewPath = filepath.Join(dir, strings.TrimSuffix(name, ScriptExt)+cfg.Preview.Ext())
			if err := preview.WriteFile(r.PreviewPath, preview.Render(columns(r.Slots), nil), cfg.Preview); err != nil {
				return fmt.Errorf("batch: region %q: %w", r.Region, err)
			}
		}
	}

	return WriteManifest(filepath.Join(dir, ManifestName), cfg.CoatingName, results)
}

func columns(slots [layermask.Slots]script.Slot) []preview.Column {
	cols := make([]preview.Column, len(slots))
	for i, s := range slots {
		cols[i] = preview.ColumnOf(s.Swatch)
	}
	return cols
}
