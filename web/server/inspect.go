package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Color        [3]float64             `json:"color"` // Traced color of the pixel
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains information about the shape hit by an inspection ray
type InspectResult struct {
	Hit          bool
	Intersection geometry.Intersection
	Ray          core.Ray
	Color        core.Vec3
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(v core.Vec3) string {
	c := renderer.ToRGBA(v)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// inspectPixel casts the ray through the center of a pixel and reports the
// nearest shape along with the traced color
func inspectPixel(sceneObj *scene.Scene, camera *renderer.Camera, pixelX, pixelY int) InspectResult {
	ray := camera.PixelRay(pixelX, pixelY)
	result := InspectResult{Ray: ray, Color: sceneObj.TraceRay(ray)}

	intr, ok := sceneObj.Intersection(ray)
	if !ok {
		return result
	}
	intr.Resolve(ray)

	result.Hit = true
	result.Intersection = intr
	return result
}

// extractSurfaceInfo describes the shading coefficients and inner medium
func (s *Server) extractSurfaceInfo(surf material.Surface, medium material.Environment) map[string]interface{} {
	return map[string]interface{}{
		"ka":             vecArray(surf.Ka),
		"kd":             vecArray(surf.Kd),
		"ks":             vecArray(surf.Ks),
		"ph":             surf.Ph,
		"kr":             surf.Kr,
		"kt":             surf.Kt,
		"color":          hexColor(surf.Kd),
		"refractionCoef": medium.RefractionCoef,
		"decayCoef":      medium.DecayCoef,
	}
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(intr geometry.Intersection) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := intr.Shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vecArray(geom.Normal)
		properties["d"] = geom.D
		return "plane", properties

	case *geometry.Box:
		properties["min"] = vecArray(geom.MinBB)
		properties["max"] = vecArray(geom.MaxBB)
		properties["face"] = intr.Aux[0]
		return "box", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vecArray(geom.P0), vecArray(geom.P1), vecArray(geom.P2)}
		properties["u"] = intr.Scalars[0]
		properties["v"] = intr.Scalars[1]
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	_, camera, err := s.newRaytracer(sceneObj, req, nil)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := inspectPixel(sceneObj, camera, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: vecArray(result.Color)})
		return
	}

	intr := result.Intersection
	geometryType, geometryProps := s.extractGeometryInfo(intr)

	response := InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vecArray(intr.P),
		Normal:       vecArray(intr.N),
		Distance:     intr.T,
		FrontFace:    intr.N.Dot(result.Ray.Direction) < 0,
		Color:        vecArray(result.Color),
		Properties: map[string]interface{}{
			"geometry": geometryProps,
			"surface":  s.extractSurfaceInfo(intr.Shape.GetSurface(), intr.Shape.GetMedium()),
		},
	}

	writeJSON(w, http.StatusOK, response)
}
