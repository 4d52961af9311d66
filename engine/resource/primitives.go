package resource

import (
	"fmt"
	"os"

	"github.com/plus3/we/engine"
	"gopkg.in/yaml.v3"
)

// PrimitiveDef describes a generated mesh in a primitive file.
//
//	meshes:
//	  - name: cube
//	    type: cube
//	    size: [1, 1, 1]
type PrimitiveDef struct {
	Name string     `yaml:"name"`
	Type string     `yaml:"type"`
	Size [3]float32 `yaml:"size,omitempty"`
}

type primitiveFile struct {
	Meshes []PrimitiveDef `yaml:"meshes"`
}

// PrimitiveImporter builds meshes from YAML primitive definitions.
type PrimitiveImporter struct{}

func (p *PrimitiveImporter) Import(path string) ([]Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePrimitives(data)
}

// ParsePrimitives builds one resource per mesh definition in data.
func ParsePrimitives(data []byte) ([]Resource, error) {
	var file primitiveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse primitives: %w", err)
	}

	resources := make([]Resource, 0, len(file.Meshes))
	for i, def := range file.Meshes {
		vertices, err := BuildPrimitive(def)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}

		name := def.Name
		if name == "" {
			name = def.Type
		}
		resources = append(resources, Resource{Name: name, Data: vertices})
	}
	return resources, nil
}

// BuildPrimitive generates vertex data for def. A zero size means 1 on every axis.
// Vertices are laid out as position (3) followed by normal (3).
func BuildPrimitive(def PrimitiveDef) (*engine.VertexData, error) {
	size := def.Size
	if size == [3]float32{} {
		size = [3]float32{1, 1, 1}
	}

	switch def.Type {
	case "cube":
		return Cube(size[0], size[1], size[2]), nil
	case "plane":
		return Plane(size[0], size[2]), nil
	case "quad":
		return Quad(size[0], size[1]), nil
	default:
		return nil, fmt.Errorf("primitive type %q: %w", def.Type, ErrUnsupportedFormat)
	}
}

type face struct {
	normal  [3]float32
	corners [4][3]float32
}

func buildFaces(faces []face) *engine.VertexData {
	data := &engine.VertexData{
		Data:       make([]float32, 0, len(faces)*4*6),
		Triangles:  make([]uint16, 0, len(faces)*6),
		Attributes: []int{3, 3},
	}

	for i, f := range faces {
		for _, c := range f.corners {
			data.Data = append(data.Data, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
		}
		base := uint16(i * 4)
		data.Triangles = append(data.Triangles, base, base+1, base+2, base, base+2, base+3)
	}
	return data
}

// Cube returns a box centered on the origin with outward facing normals and
// counter-clockwise front faces.
func Cube(w, h, d float32) *engine.VertexData {
	x, y, z := w/2, h/2, d/2
	return buildFaces([]face{
		{normal: [3]float32{0, 0, 1}, corners: [4][3]float32{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}}},
		{normal: [3]float32{0, 0, -1}, corners: [4][3]float32{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}},
		{normal: [3]float32{1, 0, 0}, corners: [4][3]float32{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}}},
		{normal: [3]float32{-1, 0, 0}, corners: [4][3]float32{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}},
		{normal: [3]float32{0, 1, 0}, corners: [4][3]float32{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}}},
		{normal: [3]float32{0, -1, 0}, corners: [4][3]float32{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}},
	})
}

// Plane returns a horizontal plane facing +Y.
func Plane(w, d float32) *engine.VertexData {
	x, z := w/2, d/2
	return buildFaces([]face{
		{normal: [3]float32{0, 1, 0}, corners: [4][3]float32{{-x, 0, z}, {x, 0, z}, {x, 0, -z}, {-x, 0, -z}}},
	})
}

// Quad returns a vertical quad facing +Z.
func Quad(w, h float32) *engine.VertexData {
	x, y := w/2, h/2
	return buildFaces([]face{
		{normal: [3]float32{0, 0, 1}, corners: [4][3]float32{{-x, -y, 0}, {x, -y, 0}, {x, y, 0}, {-x, y, 0}}},
	})
}
