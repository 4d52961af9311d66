// Command loop-stress runs a headless scene with many spinning game objects
// and prints a report of the game loop's timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	objectCount := flag.Int("objects", 10000, "The initial number of game objects to create.")
	churn := flag.Float64("churn", 0.001, "Chance per object and frame of being replaced through scene commands.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting game loop stress test...")

	scene := engine.NewScene()
	timer := engine.NewTimer(engine.NewSystemTime())
	rng := rand.New(rand.NewSource(1))

	log.Printf("Populating scene with %d game objects...\n", *objectCount)
	for range *objectCount {
		scene.AddGameObject(newSpinningObject(rng, *churn))
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Objects:        *objectCount,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	loop := engine.NewGameLoop()
	loop.AddNamedAction("timer", func() { timer.Tick() })
	loop.AddNamedAction("scene-update", func() {
		updateStart := time.Now()
		scene.Update(timer.Delta())
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	loop.Run(ctx)

	report.TotalTime = time.Since(startTime)
	report.FinalObjects = scene.Len()
	report.Loop = loop.Stats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	scene.Dispose()
	log.Println("Stress test complete.")
}

// spinner rotates its object around a fixed axis.
type spinner struct {
	obj   *engine.GameObject
	axis  mgl32.Vec3
	speed float32
}

func (s *spinner) Init(obj *engine.GameObject) {
	s.obj = obj
}

func (s *spinner) Update(frame *engine.Frame) {
	t := s.obj.Transform()
	t.SetRotation(t.Rotation.Mul(mgl32.QuatRotate(s.speed*float32(frame.DeltaTime), s.axis)).Normalize())
}

// respawner replaces its object with a fresh one at random, exercising
// deferred destroy and spawn.
type respawner struct {
	obj    *engine.GameObject
	rng    *rand.Rand
	chance float64
}

func (r *respawner) Init(obj *engine.GameObject) {
	r.obj = obj
}

func (r *respawner) Update(frame *engine.Frame) {
	if r.rng.Float64() >= r.chance {
		return
	}
	frame.Commands.Destroy(r.obj.ID())
	frame.Commands.Spawn(newSpinningObject(r.rng, r.chance))
}

func newSpinningObject(rng *rand.Rand, churn float64) *engine.GameObject {
	obj := engine.NewGameObject("spinner")
	obj.Transform().SetPosition(
		rng.Float32()*100-50,
		rng.Float32()*100-50,
		rng.Float32()*100-50,
	)

	axis := mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
	if axis.Len() == 0 {
		axis = mgl32.Vec3{0, 1, 0}
	}
	obj.AddBehavior(&spinner{axis: axis.Normalize(), speed: rng.Float32() * 4})
	if churn > 0 {
		obj.AddBehavior(&respawner{rng: rng, chance: churn})
	}
	return obj
}
