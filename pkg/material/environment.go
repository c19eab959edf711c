package material

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidMedium is returned for media with unusable optical constants
	ErrInvalidMedium = errors.New("invalid medium")
	// ErrInvalidSurface is returned for surfaces with unusable coefficients
	ErrInvalidSurface = errors.New("invalid surface")
)

// Environment describes a medium: its refractive index and absorption.
// Each shape carries the medium found inside it.
type Environment struct {
	RefractionCoef float64 // Index of refraction
	DecayCoef      float64 // Beer-Lambert absorption per unit distance
}

// NewEnvironment creates a medium
func NewEnvironment(refraction, decay float64) Environment {
	return Environment{RefractionCoef: refraction, DecayCoef: decay}
}

// Air returns the medium of empty space
func Air() Environment {
	return Environment{RefractionCoef: 1, DecayCoef: 0}
}

// Glass returns a clear medium with index 1.5
func Glass() Environment {
	return Environment{RefractionCoef: 1.5, DecayCoef: 0}
}

// Validate rejects non-positive refraction and negative decay
func (e Environment) Validate() error {
	if math.IsNaN(e.RefractionCoef) || math.IsInf(e.RefractionCoef, 0) || e.RefractionCoef <= 0 {
		return fmt.Errorf("%w: refraction coefficient %v must be positive", ErrInvalidMedium, e.RefractionCoef)
	}
	if math.IsNaN(e.DecayCoef) || math.IsInf(e.DecayCoef, 0) || e.DecayCoef < 0 {
		return fmt.Errorf("%w: decay coefficient %v must be non-negative", ErrInvalidMedium, e.DecayCoef)
	}
	return nil
}

// Decay returns the fraction of energy surviving a path of length t
func (e Environment) Decay(t float64) float64 {
	return math.Exp(-t * e.DecayCoef)
}
