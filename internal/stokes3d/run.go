package stokes3d

import (
	"fmt"
)

// Run loads a bench config, propagates the beam through the element train
// and writes the requested analyzer-sweep images.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	bench := &Bench{}
	for i, ec := range cfg.Elements {
		e, err := ec.Build()
		if err != nil {
			return fmt.Errorf("element #%d: %w", i, err)
		}
		bench.Add(e)
		DebugLog("Element #%d: %s, mount angle %.2f°", i, e.Name, ec.AngleDeg)
	}

	in, dir, err := cfg.Beam.Build()
	if err != nil {
		return err
	}

	M := bench.Matrix()
	if cfg.Beam.Basis != nil {
		M = bench.RealignedMatrix(dir, *cfg.Beam.Basis)
		DebugLog("Realigned bench matrix to basis %+v", *cfg.Beam.Basis)
	}
	out := M.MulStokes(in)
	if !isFinite(out.S0) {
		return fmt.Errorf("non-finite output intensity %v; check element parameters", out.S0)
	}
	DebugLog("Beam out: I=%.6g, DOP=%.6g, s=(%.4g, %.4g, %.4g, %.4g)",
		out.Intensity(), out.DegreeOfPolarization(), out.S0, out.S1, out.S2, out.S3)

	vals := SweepAnalyzer(out, cfg.Sweep.Steps)
	img := RenderSweep(vals, cfg.Sweep.Width, cfg.Sweep.Height, cfg.Sweep.Supersample, cfg.Sweep.Gamma)

	if cfg.Sweep.PNGOut != "" {
		if err := SaveSweepPNG(img, cfg.Sweep.PNGOut); err != nil {
			return err
		}
		DebugLog("Saved sweep PNG: %s", cfg.Sweep.PNGOut)
	}
	if cfg.Sweep.WebPOut != "" {
		if err := SaveSweepWebP(img, cfg.Sweep.WebPOut); err != nil {
			return err
		}
		DebugLog("Saved sweep WebP: %s", cfg.Sweep.WebPOut)
	}
	return nil
}
