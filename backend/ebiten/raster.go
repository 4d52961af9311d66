package ebiten

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
)

const (
	// minClipW rejects triangles touching the camera plane; there is no clipping.
	minClipW = 1e-4
	// minArea drops triangles that cover less than this many square pixels.
	minArea = 1e-3
)

var lightDir = mgl32.Vec3{0.4, 0.7, 0.6}.Normalize()

// screenTriangle is a projected triangle ready to be drawn.
type screenTriangle struct {
	X, Y  [3]float32
	Depth float32
	Shade float32
}

// projectMesh transforms every triangle of data to screen space, drops
// back-facing, degenerate and behind-camera triangles and sorts the rest back
// to front by their farthest vertex.
// Without a normal attribute every triangle gets full brightness.
func projectMesh(data *engine.VertexData, model, view, projection mgl32.Mat4, width, height int) []screenTriangle {
	stride := data.Stride()
	if stride < 3 || len(data.Triangles) < 3 {
		return nil
	}
	hasNormal := len(data.Attributes) > 1 && data.Attributes[1] == 3

	mvp := projection.Mul4(view).Mul4(model)
	normalMatrix := model.Mat3().Inv().Transpose()
	halfW, halfH := float32(width)/2, float32(height)/2

	out := make([]screenTriangle, 0, len(data.Triangles)/3)
	for i := 0; i+2 < len(data.Triangles); i += 3 {
		tri := screenTriangle{Depth: math32.Inf(-1)}
		visible := true
		var normal mgl32.Vec3

		for c := 0; c < 3; c++ {
			o := int(data.Triangles[i+c]) * stride
			if o+stride > len(data.Data) {
				visible = false
				break
			}
			clip := mvp.Mul4x1(mgl32.Vec4{data.Data[o], data.Data[o+1], data.Data[o+2], 1})
			if clip.W() < minClipW {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / clip.W())
			tri.X[c] = (ndc.X() + 1) * halfW
			tri.Y[c] = (1 - ndc.Y()) * halfH
			tri.Depth = math32.Max(tri.Depth, ndc.Z())

			if hasNormal {
				normal = normal.Add(mgl32.Vec3{data.Data[o+3], data.Data[o+4], data.Data[o+5]})
			}
		}
		if !visible {
			continue
		}

		// Screen Y points down, so counter-clockwise triangles have negative area.
		area := (tri.X[1]-tri.X[0])*(tri.Y[2]-tri.Y[0]) - (tri.X[2]-tri.X[0])*(tri.Y[1]-tri.Y[0])
		if area >= 0 || math32.Abs(area) < minArea {
			continue
		}

		tri.Shade = 1
		if hasNormal {
			worldNormal := normalMatrix.Mul3x1(normal)
			if worldNormal.Len() > 0 {
				diffuse := math32.Max(0, worldNormal.Normalize().Dot(lightDir))
				tri.Shade = math32.Min(1, 0.25+0.75*diffuse)
			}
		}
		out = append(out, tri)
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Depth > out[b].Depth })
	return out
}
