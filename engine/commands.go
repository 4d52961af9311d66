package engine

// Commands buffers structural scene changes requested during an update.
// They are applied after every Updater has run, so the object list is
// never modified while it is being iterated.
type Commands struct {
	spawns  []*GameObject
	destroy []GameObjectID
	adds    []behaviorCommand
	removes []behaviorCommand
	defers  []func()
}

type behaviorCommand struct {
	object   *GameObject
	behavior Behavior
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues a game object to be added to the scene.
func (c *Commands) Spawn(obj *GameObject) {
	c.spawns = append(c.spawns, obj)
}

// Destroy queues a game object for removal.
func (c *Commands) Destroy(id GameObjectID) {
	c.destroy = append(c.destroy, id)
}

// AddBehavior queues a behavior attachment.
func (c *Commands) AddBehavior(obj *GameObject, b Behavior) {
	c.adds = append(c.adds, behaviorCommand{object: obj, behavior: b})
}

// RemoveBehavior queues a behavior removal.
func (c *Commands) RemoveBehavior(obj *GameObject, b Behavior) {
	c.removes = append(c.removes, behaviorCommand{object: obj, behavior: b})
}

// Defer queues a function to run after all other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued commands to the scene and resets the buffer.
// Commands queued while flushing, e.g. from a deferred function, are applied
// in a further round before Flush returns. A deferred function that always
// queues another one never lets Flush return.
func (c *Commands) Flush(scene *Scene) {
	for !c.empty() {
		spawns, destroy, adds, removes, defers := c.spawns, c.destroy, c.adds, c.removes, c.defers
		c.spawns, c.destroy, c.adds, c.removes, c.defers = nil, nil, nil, nil, nil

		destroyed := make(map[GameObjectID]bool, len(destroy))
		for _, id := range destroy {
			scene.RemoveGameObject(id)
			destroyed[id] = true
		}

		for _, cmd := range removes {
			if !destroyed[cmd.object.ID()] {
				cmd.object.RemoveBehavior(cmd.behavior)
			}
		}

		for _, cmd := range adds {
			if !destroyed[cmd.object.ID()] {
				cmd.object.AddBehavior(cmd.behavior)
			}
		}

		for _, obj := range spawns {
			scene.AddGameObject(obj)
		}

		for _, fn := range defers {
			fn()
		}
	}
}

func (c *Commands) empty() bool {
	return len(c.spawns) == 0 && len(c.destroy) == 0 && len(c.adds) == 0 &&
		len(c.removes) == 0 && len(c.defers) == 0
}
