package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/dvllgmz/escapelab/internal/analysis"
	"github.com/dvllgmz/escapelab/internal/compute"
	"github.com/dvllgmz/escapelab/internal/config"
	"github.com/dvllgmz/escapelab/internal/escape"
	"github.com/dvllgmz/escapelab/internal/export"
	"github.com/dvllgmz/escapelab/internal/plane"
	"github.com/dvllgmz/escapelab/internal/storage"
	"github.com/dvllgmz/escapelab/internal/tui"
	"github.com/dvllgmz/escapelab/internal/viz"
)

var (
	dataDir string
	// Region flags
	topLeftRe     float64
	topLeftIm     float64
	bottomRightRe float64
	bottomRightIm float64
	step          float64
	// Iteration flags
	maxIterations int
	// Julia parameter
	cRe float64
	cIm float64
	// Config file and preset
	configFile string
	preset     string
	// Output flags
	pngPath   string
	svgPath   string
	plotRow   int
	plotBins  int
	viewW     int
	viewH     int
	threshold float64
	rampView  bool
	// SVG style
	brailleSVG bool
	// Backend selection
	backendName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "escapelab",
		Short: "escape-time fractal lab",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive explorer when no command given
			if err := tui.Run("mandelbrot", complex(-0.8, 0.156)); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".escapelab", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render [variant]",
		Short: "render a fractal region and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().Float64Var(&topLeftRe, "top-left-re", -2, "top-left real part")
	renderCmd.Flags().Float64Var(&topLeftIm, "top-left-im", 1.25, "top-left imaginary part")
	renderCmd.Flags().Float64Var(&bottomRightRe, "bottom-right-re", 0.75, "bottom-right real part")
	renderCmd.Flags().Float64Var(&bottomRightIm, "bottom-right-im", -1.25, "bottom-right imaginary part")
	renderCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "sampling step")
	renderCmd.Flags().IntVar(&maxIterations, "iters", config.DefaultMaxIterations, "max iterations")
	renderCmd.Flags().Float64Var(&cRe, "c-re", -0.8, "julia parameter real part")
	renderCmd.Flags().Float64Var(&cIm, "c-im", 0.156, "julia parameter imaginary part")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	renderCmd.Flags().StringVar(&pngPath, "png", "", "also write a grayscale PNG")
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "also write an SVG")

	escapeCmd := &cobra.Command{
		Use:   "escape [re] [im]",
		Short: "escape time of a single point",
		Args:  cobra.ExactArgs(2),
		RunE:  runEscape,
	}
	escapeCmd.Flags().IntVar(&maxIterations, "iters", config.DefaultMaxIterations, "max iterations")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's intensity profile and histogram",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotRow, "row", -1, "row to profile (default: middle)")
	plotCmd.Flags().IntVar(&plotBins, "bins", 20, "histogram bins")

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "show a stored run as a braille canvas",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}
	viewCmd.Flags().IntVar(&viewW, "width", 100, "canvas width in characters")
	viewCmd.Flags().IntVar(&viewH, "height", 40, "canvas height in characters")
	viewCmd.Flags().Float64Var(&threshold, "threshold", 0.05, "intensity threshold for lit dots")
	viewCmd.Flags().BoolVar(&rampView, "ramp", false, "render as an ASCII shade ramp instead of braille")

	presetsCmd := &cobra.Command{
		Use:   "presets [variant]",
		Short: "list available presets for a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for variant: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id] [file]",
		Short: "export a stored run as a grayscale PNG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportPNG,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "export a stored run as an SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().BoolVar(&brailleSVG, "braille", false, "export braille dots instead of grayscale cells")
	exportSVGCmd.Flags().IntVar(&viewW, "width", 100, "braille canvas width in characters")
	exportSVGCmd.Flags().IntVar(&viewH, "height", 40, "braille canvas height in characters")
	exportSVGCmd.Flags().Float64Var(&threshold, "threshold", 0.05, "intensity threshold for lit dots")

	benchCmd := &cobra.Command{
		Use:   "bench [variant]",
		Short: "benchmark a variant across step sizes and bounds",
		Args:  cobra.ExactArgs(1),
		RunE:  benchVariant,
	}
	benchCmd.Flags().StringVar(&backendName, "backend", "cpu", "compute backend (cpu, serial)")

	exploreCmd := &cobra.Command{
		Use:   "explore [variant]",
		Short: "interactive terminal explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := "mandelbrot"
			if len(args) > 0 {
				variant = args[0]
			}
			if _, err := escape.GetVariant(variant); err != nil {
				return err
			}
			return tui.Run(variant, complex(cRe, cIm))
		},
	}
	exploreCmd.Flags().Float64Var(&cRe, "c-re", -0.8, "julia parameter real part")
	exploreCmd.Flags().Float64Var(&cIm, "c-im", 0.156, "julia parameter imaginary part")

	rootCmd.AddCommand(renderCmd, escapeCmd, listCmd, plotCmd, viewCmd, presetsCmd,
		exportJSONCmd, exportPNGCmd, exportSVGCmd, benchCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	variant := args[0]

	cfg := config.DefaultConfig()
	cfg.Variant = variant
	cfg.Region.TopLeft = config.PointConfig{Re: topLeftRe, Im: topLeftIm}
	cfg.Region.BottomRight = config.PointConfig{Re: bottomRightRe, Im: bottomRightIm}
	cfg.Region.Step = step
	cfg.MaxIterations = maxIterations
	cfg.Julia = config.JuliaConfig{CRe: cRe, CIm: cIm}

	if preset != "" {
		p := config.GetPreset(variant, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(variant))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if cfg.Variant == "" {
			cfg.Variant = variant
		}
	}

	renderer, err := escape.GetVariant(cfg.Variant)
	if err != nil {
		return err
	}

	region := cfg.PlaneRegion()
	if err := region.Validate(); err != nil {
		return err
	}

	fmt.Printf("rendering %s...\n", cfg.Variant)
	start := time.Now()

	grid, err := region.Grid()
	if err != nil {
		return err
	}

	in, err := renderer(grid, cfg.JuliaC(), cfg.MaxIterations)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	stats := analysis.Stats(in, region)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(cfg.Variant, region, cfg.JuliaC(), cfg.MaxIterations, in, stats)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid: %dx%d cells\n", in.Rows(), in.Cols())
	fmt.Println("\nstats:")
	for name, val := range stats {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if pngPath != "" {
		if err := export.WritePNG(in, pngPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.IntensityToSVG(in, 2)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	return nil
}

func runEscape(cmd *cobra.Command, args []string) error {
	re, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid real part: %s", args[0])
	}
	im, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid imaginary part: %s", args[1])
	}

	k, escaped, err := escape.Time(complex(re, im), maxIterations)
	if err != nil {
		return err
	}

	if !escaped {
		fmt.Printf("%g%+gi did not escape within %d iterations\n", re, im, maxIterations)
		return nil
	}
	fmt.Printf("%g%+gi escaped at iteration %d\n", re, im, k)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVARIANT\tTIME\tGRID\tSTEP\tITERS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%g\t%d\n",
			run.ID,
			run.Variant,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
			run.Cols,
			run.Step,
			run.MaxIterations,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	in, err := st.LoadIntensity(runID)
	if err != nil {
		return err
	}

	if in.Rows() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("variant: %s\n\n", meta.Variant)

	row := plotRow
	if row < 0 {
		row = in.Rows() / 2
	}

	profile := analysis.RowProfile(in, row)
	if profile == nil {
		return fmt.Errorf("row %d out of range (%d rows)", row, in.Rows())
	}

	graph := asciigraph.Plot(profile,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("intensity along row %d", row)),
	)
	fmt.Println(graph)
	fmt.Println()

	hist := analysis.Histogram(in, plotBins)
	graph = asciigraph.Plot(hist,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("intensity histogram"),
	)
	fmt.Println(graph)

	return nil
}

func viewRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	in, err := st.LoadIntensity(args[0])
	if err != nil {
		return err
	}

	if rampView {
		fmt.Print(viz.ShadeRamp(in, viewW, viewH))
		return nil
	}

	canvas := viz.FromIntensity(in, viewW, viewH, threshold)
	fmt.Print(canvas.String())
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportPNG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	in, err := st.LoadIntensity(args[0])
	if err != nil {
		return err
	}
	if err := export.WritePNG(in, args[1]); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	in, err := st.LoadIntensity(args[0])
	if err != nil {
		return err
	}
	svg := export.IntensityToSVG(in, 2)
	if brailleSVG {
		canvas := viz.FromIntensity(in, viewW, viewH, threshold)
		svg = export.CanvasToSVG(canvas, 4, "#00ff00")
	}

	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func benchVariant(cmd *cobra.Command, args []string) error {
	variant := args[0]

	renderer, err := escape.GetVariant(variant)
	if err != nil {
		return err
	}

	backend, err := compute.Select(backendName)
	if err != nil {
		return err
	}
	compute.SetBackend(backend)

	steps := []float64{0.02, 0.01, 0.005}
	bounds := []int{50, 200, 500}

	fmt.Printf("benchmarking %s on %s backend\n\n", variant, backend.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tITERS\tCELLS\tTIME\tCELLS/SEC")

	for _, s := range steps {
		for _, iters := range bounds {
			grid, err := plane.Generate(complex(-2, 1.25), complex(0.75, -1.25), s)
			if err != nil {
				return err
			}

			start := time.Now()
			in, err := renderer(grid, complex(cRe, cIm), iters)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			cells := in.Rows() * in.Cols()
			cellsPerSec := float64(cells) / elapsed.Seconds()

			fmt.Fprintf(w, "%g\t%d\t%d\t%v\t%.0f\n",
				s, iters, cells, elapsed, cellsPerSec)
		}
	}

	return w.Flush()
}
