package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by Create for names with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type builtinScene struct {
	info   SceneInfo
	create func(...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:   SceneInfo{ID: "default", DisplayName: "Default", Description: "Two violet spheres over a floor"},
		create: NewDefaultScene,
	},
	"gems": {
		info:   SceneInfo{ID: "gems", DisplayName: "Gems", Description: "Ruby, emerald and glass under four lights"},
		create: NewGemsScene,
	},
	"cornell": {
		info:   SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Box and glass sphere in a colored room"},
		create: NewCornellScene,
	},
	"spheregrid": {
		info:   SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "Grid of colored reflective spheres"},
		create: NewSphereGridScene,
	},
	"boxes": {
		info:   SceneInfo{ID: "boxes", DisplayName: "Boxes", Description: "Box and pyramid over a mirror, spot and directional light"},
		create: NewBoxesScene,
	},
}

// Names returns the sorted names of all built-in scenes
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for all built-in scenes, sorted by name
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range Names() {
		infos = append(infos, builtinScenes[name].info)
	}
	return infos
}

// Create builds the named scene, applying optional camera overrides
func Create(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builtin.create(cameraOverrides...), nil
}
