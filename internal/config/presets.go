package config

// Presets names well-known regions and parameters per variant. The
// Mandelbrot entries are classic landmarks; the Julia entries pair the
// full view with parameters whose filled-in sets are widely plotted.
var Presets = map[string]map[string]*Config{
	"mandelbrot": {
		"overview": {
			Variant: "mandelbrot", MaxIterations: 50,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -2, Im: 1.25},
				BottomRight: PointConfig{Re: 0.75, Im: -1.25},
				Step:        0.005,
			},
		},
		"seahorse": {
			Variant: "mandelbrot", MaxIterations: 200,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -0.8, Im: 0.15},
				BottomRight: PointConfig{Re: -0.7, Im: 0.05},
				Step:        0.0002,
			},
		},
		"elephant": {
			Variant: "mandelbrot", MaxIterations: 200,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -1.85, Im: -0.02},
				BottomRight: PointConfig{Re: -1.75, Im: -0.10},
				Step:        0.0002,
			},
		},
		"spiral_minibrot": {
			Variant: "mandelbrot", MaxIterations: 500,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -0.7435, Im: 0.1325},
				BottomRight: PointConfig{Re: -0.7420, Im: 0.1310},
				Step:        0.000003,
			},
		},
		"triple_spiral": {
			Variant: "mandelbrot", MaxIterations: 500,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -0.7480, Im: 0.0980},
				BottomRight: PointConfig{Re: -0.7450, Im: 0.0950},
				Step:        0.000006,
			},
		},
	},
	"julia": {
		"rabbit": {
			Variant: "julia", MaxIterations: 100,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -1.6, Im: 1.2},
				BottomRight: PointConfig{Re: 1.6, Im: -1.2},
				Step:        0.004,
			},
			Julia: JuliaConfig{CRe: -0.123, CIm: 0.745},
		},
		"dendrite": {
			Variant: "julia", MaxIterations: 100,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -1.6, Im: 1.2},
				BottomRight: PointConfig{Re: 1.6, Im: -1.2},
				Step:        0.004,
			},
			Julia: JuliaConfig{CRe: 0, CIm: 1},
		},
		"seahorse_tail": {
			Variant: "julia", MaxIterations: 200,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -1.6, Im: 1.2},
				BottomRight: PointConfig{Re: 1.6, Im: -1.2},
				Step:        0.004,
			},
			Julia: JuliaConfig{CRe: -0.75, CIm: 0.11},
		},
		"siegel": {
			Variant: "julia", MaxIterations: 100,
			Region: RegionConfig{
				TopLeft:     PointConfig{Re: -1.6, Im: 1.2},
				BottomRight: PointConfig{Re: 1.6, Im: -1.2},
				Step:        0.004,
			},
			Julia: JuliaConfig{CRe: -0.391, CIm: -0.587},
		},
	},
}

func GetPreset(variant, preset string) *Config {
	variantPresets, ok := Presets[variant]
	if !ok {
		return nil
	}
	cfg, ok := variantPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(variant string) []string {
	variantPresets, ok := Presets[variant]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(variantPresets))
	for name := range variantPresets {
		names = append(names, name)
	}
	return names
}
