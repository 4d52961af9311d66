package engine

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// Scene owns a collection of game objects.
type Scene struct {
	objects  []*GameObject
	index    *intmap.Map[GameObjectID, *GameObject]
	renderer *SceneRenderer
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	s := &Scene{
		index: intmap.New[GameObjectID, *GameObject](64),
	}
	s.renderer = &SceneRenderer{scene: s}
	return s
}

// AddGameObject adds obj to the scene. Adding an object that already belongs
// to another scene is a programming error.
func (s *Scene) AddGameObject(obj *GameObject) {
	if obj.scene == s {
		return
	}
	if obj.scene != nil {
		panic("game object " + obj.name + " already belongs to a scene")
	}

	obj.scene = s
	s.objects = append(s.objects, obj)
	s.index.Put(obj.id, obj)

	Logger().Debug("game object added", "id", obj.id, "name", obj.name)
}

// RemoveGameObject removes and disposes the object with the given id.
// Returns false if the scene does not contain it.
func (s *Scene) RemoveGameObject(id GameObjectID) bool {
	obj, ok := s.index.Get(id)
	if !ok {
		return false
	}

	s.index.Del(id)
	if idx := slices.Index(s.objects, obj); idx != -1 {
		s.objects = slices.Delete(s.objects, idx, idx+1)
	}
	obj.dispose()
	obj.scene = nil

	Logger().Debug("game object removed", "id", id, "name", obj.name)
	return true
}

// GameObject looks up an object by id.
func (s *Scene) GameObject(id GameObjectID) *GameObject {
	obj, _ := s.index.Get(id)
	return obj
}

// GameObjects iterates the objects in insertion order.
func (s *Scene) GameObjects() iter.Seq[*GameObject] {
	return func(yield func(*GameObject) bool) {
		for _, obj := range s.objects {
			if !yield(obj) {
				return
			}
		}
	}
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Update runs every Updater behavior once and then applies the queued commands.
func (s *Scene) Update(dt float64) {
	frame := newFrame(dt, s)

	for _, obj := range s.objects {
		for _, b := range obj.behaviors {
			if u, ok := b.(Updater); ok {
				u.Update(frame)
			}
		}
	}

	frame.Commands.Flush(s)
}

// Renderer returns the renderer drawing this scene.
func (s *Scene) Renderer() *SceneRenderer {
	return s.renderer
}

// Dispose removes every object, disposing their behaviors.
func (s *Scene) Dispose() {
	for _, obj := range s.objects {
		obj.dispose()
		obj.scene = nil
	}
	s.objects = nil
	s.index.Clear()
}

// SceneRenderer draws every Renderer behavior of a scene against a camera.
type SceneRenderer struct {
	scene *Scene
	ctx   RenderContext
}

// Render draws the scene from the point of view of camera.
func (r *SceneRenderer) Render(camera *Camera) {
	r.ctx.Camera = camera
	r.ctx.View = camera.ViewMatrix()
	r.ctx.Projection = camera.ProjectionMatrix()

	for _, obj := range r.scene.objects {
		r.ctx.Object = obj
		r.ctx.Model = obj.transform.Matrix()
		for _, b := range obj.behaviors {
			if rb, ok := b.(Renderer); ok {
				rb.Render(&r.ctx)
			}
		}
	}

	r.ctx.Object = nil
}
