package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Ruby is a deep red, highly reflective gem surface
func Ruby() Surface {
	return NewSurface(
		core.NewVec3(0.1745, 0.01175, 0.01175),
		core.NewVec3(0.61424, 0.04136, 0.04136),
		core.NewVec3(0.727811, 0.626959, 0.626959),
		76.8, 0.68, 0.7,
	)
}

// Emerald is the green counterpart of Ruby
func Emerald() Surface {
	return NewSurface(
		core.NewVec3(0.0215, 0.1745, 0.0215),
		core.NewVec3(0.07568, 0.61424, 0.07568),
		core.NewVec3(0.633, 0.727811, 0.633),
		76.8, 0.68, 0.7,
	)
}

// Violet is a saturated purple surface that is mostly transmissive
func Violet() Surface {
	return NewSurface(
		core.NewVec3(0.4, 0.2, 0.8),
		core.NewVec3(0.3, 0.1, 0.89),
		core.NewVec3(0.4, 0.2, 0.9),
		1, 0.4, 0.9,
	)
}

// Slate is a dark blue-grey floor surface
func Slate() Surface {
	return NewSurface(
		core.NewVec3(0.10588, 0.058824, 0.113725),
		core.NewVec3(0.427451, 0.470588, 0.541176),
		core.NewVec3(0.3333, 0.3333, 0.521569),
		9.84615, 0.40, 0.1,
	)
}

// Mirror reflects almost everything and has no diffuse term
func Mirror() Surface {
	return NewSurface(core.Splat(0), core.Splat(0.05), core.Splat(0.9), 64, 0.9, 0)
}
