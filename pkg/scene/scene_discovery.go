package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier, used on the command line
	DisplayName string // Human readable name
	Description string
}

type sceneEntry struct {
	description string
	build       func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		description: "Glossy, glass and metal spheres with two emitters over a ground plane",
		build:       NewDefaultScene,
	},
	"cornell": {
		description: "Cornell box built from triangle meshes with a ceiling light",
		build:       NewCornellScene,
	},
	"glass": {
		description: "Solid, tinted and hollow dielectric spheres",
		build:       NewGlassScene,
	},
	"mesh": {
		description: "Indexed triangle mesh pyramid beside a mirror panel",
		build:       NewTriangleMeshScene,
	},
}

// Names returns the registered scene identifiers in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by identifier
func ListScenes() []SceneInfo {
	names := Names()
	scenes := make([]SceneInfo, 0, len(names))
	for _, name := range names {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtinScenes[name].description,
		})
	}
	return scenes
}

// New builds the named scene. Camera overrides are merged onto the scene's own camera.
func New(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	entry, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return entry.build(cameraOverrides...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
