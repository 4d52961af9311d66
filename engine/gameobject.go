package engine

import (
	"slices"
	"sync/atomic"
)

// GameObjectID identifies a game object. The zero value is never assigned.
type GameObjectID uint64

var lastGameObjectID atomic.Uint64

func nextGameObjectID() GameObjectID {
	return GameObjectID(lastGameObjectID.Add(1))
}

// GameObject is an entity in a scene composed of behaviors.
// It is the single owner of its transform.
type GameObject struct {
	id        GameObjectID
	name      string
	transform *Transform3D
	behaviors []Behavior
	scene     *Scene
}

// NewGameObject creates a game object with an identity transform.
func NewGameObject(name string) *GameObject {
	return &GameObject{
		id:        nextGameObjectID(),
		name:      name,
		transform: NewTransform3D(),
	}
}

func (g *GameObject) ID() GameObjectID {
	return g.id
}

func (g *GameObject) Name() string {
	return g.name
}

func (g *GameObject) SetName(name string) {
	g.name = name
}

func (g *GameObject) Transform() *Transform3D {
	return g.transform
}

// Scene returns the scene this object belongs to, or nil.
func (g *GameObject) Scene() *Scene {
	return g.scene
}

// AddBehavior attaches a behavior and calls its Init hook if it has one.
func (g *GameObject) AddBehavior(b Behavior) {
	if b == nil {
		return
	}
	g.behaviors = append(g.behaviors, b)
	if init, ok := b.(Initializer); ok {
		init.Init(g)
	}
}

// RemoveBehavior detaches a behavior and disposes it. Returns false if it was not attached.
func (g *GameObject) RemoveBehavior(b Behavior) bool {
	idx := slices.IndexFunc(g.behaviors, func(other Behavior) bool { return other == b })
	if idx == -1 {
		return false
	}
	g.behaviors = slices.Delete(g.behaviors, idx, idx+1)
	if d, ok := b.(Disposer); ok {
		d.Dispose()
	}
	return true
}

// Behaviors returns the attached behaviors in attachment order.
func (g *GameObject) Behaviors() []Behavior {
	return g.behaviors
}

func (g *GameObject) dispose() {
	for _, b := range g.behaviors {
		if d, ok := b.(Disposer); ok {
			d.Dispose()
		}
	}
	g.behaviors = nil
}

// BehaviorOf returns the first behavior of type T attached to obj.
func BehaviorOf[T Behavior](obj *GameObject) (T, bool) {
	for _, b := range obj.behaviors {
		if typed, ok := b.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}
