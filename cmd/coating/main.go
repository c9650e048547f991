package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"infinite-coating-tool/internal/batch"
	"infinite-coating-tool/internal/coating"
	"infinite-coating-tool/internal/config"
	"infinite-coating-tool/internal/edgewear"
	"infinite-coating-tool/internal/preview"
	"infinite-coating-tool/internal/texture"
)

type options struct {
	input      string
	name       string
	resources  string
	template   string
	groups     string
	cache      string
	outputDir  string
	detailMaps string
	preview    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		logger *zap.Logger
	)

	root := &cobra.Command{
		Use:   "coating",
		Short: "Convert an armor coating JSON file into per-region shader setup scripts",
		Long: `coating converts an armor coating data file from the Halo Waypoint API into
one material setup script per armor region, ready to run in Blender.

Resources (template.py, groups.ini, cache.ini) are read from the Resources
directory next to the executable unless overridden by flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, logger)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log slot resolution and other debug detail")

	f := root.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "JSON or YAML file containing the armor coating info")
	f.StringVarP(&opts.name, "name", "n", "", "Armor coating name (default: the document's name)")
	f.StringVar(&opts.resources, "resources", "", "Resources directory (default: Resources next to the executable)")
	f.StringVar(&opts.template, "template", "", "Script template (default: <resources>/template.py)")
	f.StringVar(&opts.groups, "groups", "", "Edge-wear group table (default: <resources>/groups.ini)")
	f.StringVar(&opts.cache, "cache", "", "Path settings file (default: <resources>/cache.ini)")
	f.StringVarP(&opts.outputDir, "output", "o", "", "Output directory for this run (default: from cache.ini)")
	f.StringVar(&opts.detailMaps, "detail-maps", "", "Detail maps directory for this run (default: from cache.ini)")
	f.StringVar(&opts.preview, "preview", "none", "Write a swatch preview per region: none, webp or tga")
	_ = root.MarkFlagRequired("input")

	root.AddCommand(newSchemaCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func (o options) resourcePath(flagValue, file string) string {
	if flagValue != "" {
		return flagValue
	}
	dir := o.resources
	if dir == "" {
		dir = config.ResourcesDir()
	}
	return filepath.Join(dir, file)
}

func runGenerate(cmd *cobra.Command, opts options, logger *zap.Logger) error {
	format, err := preview.ParseFormat(opts.preview)
	if err != nil {
		return err
	}

	// Load cached paths; prompt for the output folder on first run.
	cfg, err := config.Load(opts.resourcePath(opts.cache, config.CacheFile))
	if err != nil {
		return err
	}
	logger.Debug("cache loaded",
		zap.String("path", cfg.Path()),
		zap.String("output", cfg.OutputDir),
		zap.String("detail_maps", cfg.DetailMaps))
	cfg.Resolve(config.Flags{DetailMaps: opts.detailMaps, OutputDir: opts.outputDir})
	if err := cfg.EnsureOutput(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return err
	}

	doc, err := coating.Load(opts.input)
	if err != nil {
		return err
	}
	name := opts.name
	if name == "" {
		name = doc.Name
	}
	if name == "" {
		return fmt.Errorf("no coating name: pass -n or set name in %s", opts.input)
	}

	templatePath := opts.resourcePath(opts.template, config.TemplateFile)
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	table, err := edgewear.LoadTable(opts.resourcePath(opts.groups, config.GroupsFile))
	if err != nil {
		return err
	}

	var textures *texture.Index
	if cfg.DetailMaps != "" {
		textures = texture.BuildIndex(cfg.DetailMaps, logger)
		logger.Debug("detail maps indexed", zap.String("dir", cfg.DetailMaps), zap.Int("textures", textures.Len()))
	}

	logger.Info("generating scripts",
		zap.String("coating", name),
		zap.Int("regions", doc.RegionLayers.Len()),
		zap.Int("swatches", len(doc.Swatches)),
		zap.String("output", batch.CoatingDir(cfg.OutputDir, name)))
	logger.Debug("region order", zap.Strings("regions", doc.RegionLayers.Names()))

	start := time.Now()
	results, err := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		CoatingName: name,
		DetailMaps:  cfg.DetailMaps,
		Template:    string(tmpl),
		EdgeWear:    table,
		Preview:     format,
		Textures:    textures,
		Logger:      logger,
	}, doc)
	if err != nil {
		return err
	}

	for _, r := range results {
		logger.Debug("script written", zap.String("region", r.Region), zap.String("path", r.ScriptPath))
	}
	logger.Info("done",
		zap.Int("scripts", len(results)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
