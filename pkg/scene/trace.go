package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Trace returns the color seen along ray, which travels through medium and
// carries the given energy weight. Rays at or beyond MaxRecLevel, or with
// weight at or below core.Threshold, return the background.
func (s *Scene) Trace(ray core.Ray, medium material.Environment, weight float64, depth int) core.Vec3 {
	if depth >= s.MaxRecLevel || weight <= core.Threshold {
		return s.Background
	}

	intr, ok := s.Intersection(ray)
	if !ok {
		return s.Background
	}
	intr.Resolve(ray)

	color := s.Shade(ray.Direction, medium, &intr, weight, depth+1)

	if s.Fog != nil {
		k := s.Fog.Visibility(intr.T)
		color = color.Multiply(k).Add(s.Fog.Color.Multiply(1 - k))
	}
	return color
}

// Shade evaluates the Phong terms of every light at a resolved intersection
// and adds the recursively traced reflection and refraction. The result is
// scaled by weight.
func (s *Scene) Shade(dir core.Vec3, medium material.Environment, intr *geometry.Intersection, weight float64, depth int) core.Vec3 {
	surf := intr.Shape.GetSurface()
	inside := intr.Shape.GetMedium()

	color := surf.Ka.MultiplyVec(s.AmbientColor)

	// Orient the normal against the incoming ray. A ray leaving the shape
	// continues in the medium it came through.
	outMedium := inside
	if intr.N.Dot(dir) > 0 {
		intr.N = intr.N.Negate()
		outMedium = medium
	}
	n := intr.N
	p := intr.P

	cosI := dir.Dot(n)
	reflected := dir.Subtract(n.Multiply(2 * cosI))
	refracted, canRefract := refract(dir, n, cosI, inside.RefractionCoef/medium.RefractionCoef)

	decay := medium.Decay(intr.T)

	// The secondary rays do not depend on the light, yet they are traced once
	// per light and tinted by its color
	for _, light := range s.Lights {
		att, info := light.Shadow(p)

		diffuse := surf.Kd.Multiply(max(0, n.Dot(info.L)))
		specular := surf.Ks.Multiply(math.Pow(max(0, reflected.Dot(info.L)), surf.Ph))
		local := diffuse.Add(specular).Multiply(att)

		mirror := s.Trace(core.Ray{Origin: p.Add(reflected.Multiply(core.Threshold)), Direction: reflected},
			outMedium, weight*surf.Kr, depth+1).Multiply(surf.Kr)

		contribution := info.Color.MultiplyVec(local.Add(mirror)).Multiply(decay)

		if canRefract {
			transmitted := s.Trace(core.Ray{Origin: p.Add(refracted.Multiply(core.Threshold)), Direction: refracted},
				outMedium, weight*surf.Kt, depth+1)
			contribution = contribution.Add(info.Color.MultiplyVec(transmitted).Multiply(surf.Kt * decay))
		}

		if s.occluded(p, info) {
			switch s.ShadowMode {
			case ShadowPerLight:
				contribution = contribution.Multiply(ShadowFactor)
				color = color.Add(contribution)
			default:
				color = color.Add(contribution).Multiply(ShadowFactor)
			}
			continue
		}
		color = color.Add(contribution)
	}

	return color.Multiply(weight)
}

// refract bends dir through a surface with normal n facing the incoming ray,
// cosI = dir·n. It reports false on total internal reflection.
func refract(dir, n core.Vec3, cosI, eta float64) (core.Vec3, bool) {
	dn := -cosI
	k := 1 - (1-dn*dn)*eta*eta
	if k < 0 {
		return core.Vec3{}, false
	}
	tangent := dir.Subtract(n.Multiply(cosI)).Multiply(eta)
	return tangent.Subtract(n.Multiply(math.Sqrt(k))).Normalize(), true
}
