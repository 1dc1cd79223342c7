package stokes3d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

type BeamCfg struct {
	Stokes    [4]Real `json:"stokes"`
	Direction Vector3 `json:"direction,omitempty"` // defaults to +Z
	// Optional target basis the bench matrix is re-expressed in; must be
	// orthogonal to the direction.
	Basis *Vector3 `json:"basis,omitempty"`
}

// ElementCfg describes one optical element. Angles come in degrees
// (friendlier than radians in JSON).
type ElementCfg struct {
	Kind     string `json:"kind"`
	Value    Real   `json:"value,omitempty"`    // polarizer/depolarizer/absorber
	PhaseDeg Real   `json:"phaseDeg,omitempty"` // retarder
	ThetaDeg Real   `json:"thetaDeg,omitempty"` // rotator
	X        Real   `json:"x,omitempty"`        // diattenuator axes
	Y        Real   `json:"y,omitempty"`
	AngleDeg Real   `json:"angleDeg,omitempty"` // mount angle, any kind

	// reflection / transmission
	CosThetaI Real `json:"cosThetaI,omitempty"`
	Eta       Real `json:"eta,omitempty"`
	EtaK      Real `json:"etaK,omitempty"` // extinction coefficient, conductors
}

type SweepCfg struct {
	Steps       int    `json:"steps,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Supersample int    `json:"supersample,omitempty"`
	Gamma       Real   `json:"gamma,omitempty"`
	PNGOut      string `json:"pngOut,omitempty"`
	WebPOut     string `json:"webpOut,omitempty"`
}

type Config struct {
	Beam     BeamCfg      `json:"beam"`
	Elements []ElementCfg `json:"elements"`
	Sweep    SweepCfg     `json:"sweep"`
}

// Build validates the element config and constructs the bench element.
func (c ElementCfg) Build() (Element, error) {
	angle := c.AngleDeg * math.Pi / 180.0
	e := Element{Name: c.Kind, Angle: angle}
	switch c.Kind {
	case "polarizer":
		v := c.Value
		if v == 0 {
			v = 1
		}
		e.Matrix = LinearPolarizer(v)
	case "retarder":
		e.Matrix = LinearRetarder(c.PhaseDeg * math.Pi / 180.0)
	case "diattenuator":
		if c.X < 0 || c.Y < 0 {
			return e, fmt.Errorf("diattenuator axes must be non-negative, got x=%g y=%g", c.X, c.Y)
		}
		e.Matrix = Diattenuator(c.X, c.Y)
	case "rotator":
		e.Matrix = Rotator(c.ThetaDeg * math.Pi / 180.0)
	case "depolarizer":
		e.Matrix = Depolarizer(c.Value)
	case "absorber":
		e.Matrix = Absorber(c.Value)
	case "reflection":
		if c.Eta == 0 && c.EtaK == 0 {
			return e, fmt.Errorf("reflection needs a non-zero eta")
		}
		e.Matrix = SpecularReflection(c.CosThetaI, complex(c.Eta, c.EtaK))
	case "transmission":
		if c.Eta == 0 {
			return e, fmt.Errorf("transmission needs a non-zero real eta")
		}
		e.Matrix = SpecularTransmission(c.CosThetaI, c.Eta)
	default:
		return e, fmt.Errorf("unknown element kind %q", c.Kind)
	}
	return e, nil
}

func (c BeamCfg) Build() (Stokes, Vector3, error) {
	s := Stokes{c.Stokes[0], c.Stokes[1], c.Stokes[2], c.Stokes[3]}
	dir := c.Direction
	if dir == (Vector3{}) {
		dir = Vector3{0, 0, 1}
	}
	dir = dir.Norm()
	if c.Basis != nil {
		if math.Abs(c.Basis.Norm().Dot(dir)) > 1e-6 {
			return s, dir, fmt.Errorf("beam basis must be orthogonal to direction")
		}
	}
	return s, dir, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(cfg.Elements) == 0 {
		return nil, fmt.Errorf("config %s has no elements", path)
	}
	// Defaults
	if cfg.Sweep.Steps <= 0 {
		cfg.Sweep.Steps = 180
	}
	if cfg.Sweep.Width <= 0 {
		cfg.Sweep.Width = 640
	}
	if cfg.Sweep.Height <= 0 {
		cfg.Sweep.Height = 360
	}
	if cfg.Sweep.Supersample <= 0 {
		cfg.Sweep.Supersample = 2
	}
	if cfg.Sweep.Gamma == 0 {
		cfg.Sweep.Gamma = 1
	}
	return &cfg, nil
}
