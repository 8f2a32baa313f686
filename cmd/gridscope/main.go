// Command gridscope analyzes one colored grid and prints the report.
//
// Usage:
//
//	gridscope [-grid file.yaml] [-png out.png] [-fill N] [-no-objects] [-quiet]
//
// Without -grid the built-in 24×24 demo puzzle is analyzed.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridscope/analyzer"
	"github.com/katalvlaran/gridscope/format"
	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/logging"
	"github.com/katalvlaran/gridscope/render"
	"github.com/katalvlaran/gridscope/transform"
)

//go:embed demo.yaml
var demoGrid []byte

type config struct {
	gridPath  string
	pngPath   string
	fill      int
	noObjects bool
	quiet     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.gridPath, "grid", "", "YAML or JSON grid file (default: built-in demo)")
	flag.StringVar(&cfg.pngPath, "png", "", "write a heat-map PNG of the analyzed grid to this path")
	flag.IntVar(&cfg.fill, "fill", -1, "recolor uniform interiors with this color before analysis")
	flag.BoolVar(&cfg.noObjects, "no-objects", false, "skip per-object description")
	flag.BoolVar(&cfg.quiet, "quiet", false, "suppress diagnostic logging")
	flag.Parse()

	if cfg.quiet {
		logging.SetLogger(nil)
	}
	if err := run(cfg, os.Stdout); err != nil {
		logging.Logf("gridscope: %v", err)
		os.Exit(1)
	}
}

func run(cfg config, out io.Writer) error {
	var (
		values [][]int
		err    error
	)
	if cfg.gridPath == "" {
		values, err = parseGrid(demoGrid)
	} else {
		values, err = loadGrid(cfg.gridPath)
	}
	if err != nil {
		return err
	}

	g, err := grid.New(values)
	if err != nil {
		return fmt.Errorf("malformed grid: %w", err)
	}
	if cfg.fill >= 0 {
		if cfg.fill > int(grid.MaxColor) {
			return fmt.Errorf("fill color %d: %w", cfg.fill, grid.ErrColorRange)
		}
		g = transform.Fill(g, grid.Color(cfg.fill))
	}

	opts := []analyzer.Option{analyzer.WithLogger(logging.Logf)}
	if cfg.noObjects {
		opts = append(opts, analyzer.WithoutObjects())
	}
	report, err := analyzer.Analyze(g, opts...)
	if err != nil {
		return err
	}
	if err := format.Write(out, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.pngPath != "" {
		if err := writePNG(cfg.pngPath, g); err != nil {
			return err
		}
		logging.Logf("gridscope: wrote %s", cfg.pngPath)
	}
	return nil
}

func writePNG(path string, g grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create png: %w", err)
	}
	if err := render.WritePNG(f, g, "grid", 0); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
