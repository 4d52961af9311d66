package resource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
	"github.com/plus3/we/engine/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestModelLoaderPrimitives(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scene.yaml", `
meshes:
  - name: box
    type: cube
    size: [2, 4, 6]
  - type: plane
`)

	resources, err := resource.NewModelLoader().LoadScene(path)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	assert.Equal(t, "box", resources[0].Name)
	assert.Equal(t, "plane", resources[1].Name)

	cube, ok := resources[0].VertexData()
	require.True(t, ok)
	assert.Equal(t, 24, cube.VertexCount())
	assert.Len(t, cube.Triangles, 36)
	assert.Equal(t, 6, cube.Stride())

	for i := 0; i < len(cube.Data); i += cube.Stride() {
		assert.InDelta(t, 1, abs(cube.Data[i]), 1e-6)
		assert.InDelta(t, 2, abs(cube.Data[i+1]), 1e-6)
		assert.InDelta(t, 3, abs(cube.Data[i+2]), 1e-6)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestModelLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	loader := resource.NewModelLoader()

	_, err := loader.LoadScene(writeFile(t, dir, "cube.obj", ""))
	assert.ErrorIs(t, err, resource.ErrUnsupportedFormat)

	_, err = loader.LoadScene(writeFile(t, dir, "bad.yaml", "meshes:\n  - type: torus\n"))
	assert.ErrorIs(t, err, resource.ErrUnsupportedFormat)

	_, err = loader.LoadScene(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.LoadScene(writeFile(t, dir, "broken.yml", "meshes: [\n"))
	assert.Error(t, err)
}

type staticImporter struct {
	resources []resource.Resource
}

func (s *staticImporter) Import(string) ([]resource.Resource, error) {
	return s.resources, nil
}

func TestModelLoaderCustomImporter(t *testing.T) {
	loader := resource.NewModelLoader()
	loader.Register(".OBJ", &staticImporter{resources: []resource.Resource{{Name: "stub", Data: "not vertices"}}})

	resources, err := loader.LoadScene("model.obj")
	require.NoError(t, err)
	require.Len(t, resources, 1)

	_, ok := resources[0].VertexData()
	assert.False(t, ok)
}

// Every triangle of a generated primitive must wind counter-clockwise when
// seen from the side its normal points to.
func TestPrimitiveWinding(t *testing.T) {
	primitives := map[string]*engine.VertexData{
		"cube":  resource.Cube(1, 2, 3),
		"plane": resource.Plane(4, 4),
		"quad":  resource.Quad(1, 1),
	}

	for name, data := range primitives {
		t.Run(name, func(t *testing.T) {
			stride := data.Stride()
			vertex := func(i uint16) (mgl32.Vec3, mgl32.Vec3) {
				o := int(i) * stride
				d := data.Data
				return mgl32.Vec3{d[o], d[o+1], d[o+2]}, mgl32.Vec3{d[o+3], d[o+4], d[o+5]}
			}

			for i := 0; i < len(data.Triangles); i += 3 {
				a, normal := vertex(data.Triangles[i])
				b, _ := vertex(data.Triangles[i+1])
				c, _ := vertex(data.Triangles[i+2])

				faceNormal := b.Sub(a).Cross(c.Sub(a))
				assert.Greater(t, faceNormal.Dot(normal), float32(0), "triangle %d", i/3)
			}
		})
	}
}

func TestLoadShaderCode(t *testing.T) {
	dir := t.TempDir()
	vert := writeFile(t, dir, "normal.vert", "void main() {}")
	frag := writeFile(t, dir, "normal.frag", "out vec4 color;")

	code, err := resource.LoadShaderCode(vert, frag)
	require.NoError(t, err)
	assert.Equal(t, engine.RawShaderCode{Vert: "void main() {}", Frag: "out vec4 color;"}, code)

	_, err = resource.LoadShaderCode(vert, filepath.Join(dir, "missing.frag"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
