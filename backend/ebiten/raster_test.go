package ebiten

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
	"github.com/plus3/we/engine/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrices(cameraZ float32) (view, projection mgl32.Mat4) {
	camera := engine.NewCamera(&engine.FixedScreen{Width: 100, Height: 100})
	camera.Transform().SetPosition(0, 0, cameraZ)
	return camera.ViewMatrix(), camera.ProjectionMatrix()
}

func TestProjectMeshCullsBackFaces(t *testing.T) {
	view, projection := testMatrices(5)

	triangles := projectMesh(resource.Cube(1, 1, 1), mgl32.Ident4(), view, projection, 100, 100)

	// Looking straight at the cube only the front face is visible.
	require.Len(t, triangles, 2)
	for _, tri := range triangles {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, 50, tri.X[c], 10)
			assert.InDelta(t, 50, tri.Y[c], 10)
		}
		assert.Greater(t, tri.Shade, float32(0.25))
	}
}

func TestProjectMeshSortsBackToFront(t *testing.T) {
	view, projection := testMatrices(5)
	model := mgl32.HomogRotate3DY(mgl32.DegToRad(30)).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30)))

	triangles := projectMesh(resource.Cube(1, 1, 1), model, view, projection, 100, 100)

	require.Len(t, triangles, 6)
	for i := 1; i < len(triangles); i++ {
		assert.GreaterOrEqual(t, triangles[i-1].Depth, triangles[i].Depth)
	}
}

func TestProjectMeshDropsTrianglesBehindCamera(t *testing.T) {
	view, projection := testMatrices(-5)

	// The camera at z=-5 looks down -Z, away from the quad at the origin.
	triangles := projectMesh(resource.Quad(1, 1), mgl32.Ident4(), view, projection, 100, 100)
	assert.Empty(t, triangles)
}

func TestProjectMeshWithoutNormals(t *testing.T) {
	view, projection := testMatrices(3)
	data := &engine.VertexData{
		Data:       []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0},
		Triangles:  []uint16{0, 1, 2},
		Attributes: []int{3},
	}

	triangles := projectMesh(data, mgl32.Ident4(), view, projection, 100, 100)
	require.Len(t, triangles, 1)
	assert.Equal(t, float32(1), triangles[0].Shade)
}

func TestProjectMeshIgnoresBadIndices(t *testing.T) {
	view, projection := testMatrices(3)
	data := &engine.VertexData{
		Data:       []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0},
		Triangles:  []uint16{0, 1, 7},
		Attributes: []int{3},
	}

	assert.Empty(t, projectMesh(data, mgl32.Ident4(), view, projection, 100, 100))
	assert.Empty(t, projectMesh(&engine.VertexData{}, mgl32.Ident4(), view, projection, 100, 100))
}

func TestProjectMeshDropsDegenerateTriangles(t *testing.T) {
	view, projection := testMatrices(3)
	data := &engine.VertexData{
		Data:       []float32{-1, 0, 0, 0, 0, 0, 1, 0, 0},
		Triangles:  []uint16{0, 1, 2},
		Attributes: []int{3},
	}

	assert.Empty(t, projectMesh(data, mgl32.Ident4(), view, projection, 100, 100))
}

func TestProjectMeshDepthIsFarthestVertex(t *testing.T) {
	view, projection := testMatrices(3)
	data := &engine.VertexData{
		Data:       []float32{-1, -1, 0, 1, -1, -1, 0, 1, 0},
		Triangles:  []uint16{0, 1, 2},
		Attributes: []int{3},
	}

	triangles := projectMesh(data, mgl32.Ident4(), view, projection, 100, 100)
	require.Len(t, triangles, 1)

	far := projection.Mul4(view).Mul4x1(mgl32.Vec4{1, -1, -1, 1})
	assert.InDelta(t, far.Z()/far.W(), triangles[0].Depth, 1e-5)
	assert.LessOrEqual(t, triangles[0].Shade, float32(1))
}

func TestIsKage(t *testing.T) {
	assert.True(t, isKage("//kage:unit pixels\n\npackage main"))
	assert.True(t, isKage("package main\n\nfunc Fragment() {}"))
	assert.False(t, isKage("#version 410 core\nvoid main() {}"))
}
