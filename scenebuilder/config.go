package scenebuilder

import "github.com/vsaulue/Gustave-sub001/vecmath"

// BuilderOption customizes the builderConfig every Constructor reads its
// per-block material and mass from.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the defaults every fixture block is stamped with,
// absent an overriding BuilderOption.
type builderConfig struct {
	maxPressureStress vecmath.Stress[float64]
	mass              float64
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		maxPressureStress: defaultMaxPressureStress(),
		mass:              DefaultMass,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func defaultMaxPressureStress() vecmath.Stress[float64] {
	s, err := vecmath.NewStress(DefaultPressureComponent, DefaultPressureComponent, DefaultPressureComponent)
	if err != nil {
		// DefaultPressureComponent is a positive package constant; this
		// can only fail if that invariant is broken at compile time.
		panic(err)
	}
	return s
}

// WithMaxPressureStress overrides every fixture block's material
// pressure limit. No-op unless every component is strictly positive.
func WithMaxPressureStress(s vecmath.Stress[float64]) BuilderOption {
	return func(cfg *builderConfig) {
		if s.Compression > 0 && s.Shear > 0 && s.Tensile > 0 {
			cfg.maxPressureStress = s
		}
	}
}

// WithMass overrides every fixture block's mass. No-op unless mass > 0.
func WithMass(mass float64) BuilderOption {
	return func(cfg *builderConfig) {
		if mass > 0 {
			cfg.mass = mass
		}
	}
}
