// Package resource loads meshes and shader sources for the engine.
package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plus3/we/engine"
)

var ErrUnsupportedFormat = errors.New("unsupported model format")

// Resource is a single named asset produced by an importer.
type Resource struct {
	Name string
	Data any
}

// VertexData returns the resource payload as vertex data, if it is one.
func (r Resource) VertexData() (*engine.VertexData, bool) {
	data, ok := r.Data.(*engine.VertexData)
	return data, ok
}

// Importer converts a model file into resources.
type Importer interface {
	Import(path string) ([]Resource, error)
}

// ModelLoader dispatches model files to an importer based on their extension.
type ModelLoader struct {
	importers map[string]Importer
}

// NewModelLoader creates a loader with the built-in primitive importer registered
// for .yaml and .yml files.
func NewModelLoader() *ModelLoader {
	l := &ModelLoader{importers: make(map[string]Importer)}
	primitives := &PrimitiveImporter{}
	l.Register(".yaml", primitives)
	l.Register(".yml", primitives)
	return l
}

// Register sets the importer used for files with the given extension.
func (l *ModelLoader) Register(ext string, importer Importer) {
	l.importers[strings.ToLower(ext)] = importer
}

// LoadScene imports every resource contained in the file at path.
func (l *ModelLoader) LoadScene(path string) ([]Resource, error) {
	ext := strings.ToLower(filepath.Ext(path))
	importer, ok := l.importers[ext]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", path, ErrUnsupportedFormat)
	}

	resources, err := importer.Import(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	engine.Logger().Debug("model loaded", "path", path, "resources", len(resources))
	return resources, nil
}

// LoadShaderCode reads a vertex and fragment shader pair.
func LoadShaderCode(vertPath, fragPath string) (engine.RawShaderCode, error) {
	vert, err := os.ReadFile(vertPath)
	if err != nil {
		return engine.RawShaderCode{}, fmt.Errorf("read vertex shader: %w", err)
	}

	frag, err := os.ReadFile(fragPath)
	if err != nil {
		return engine.RawShaderCode{}, fmt.Errorf("read fragment shader: %w", err)
	}

	return engine.RawShaderCode{Vert: string(vert), Frag: string(frag)}, nil
}
