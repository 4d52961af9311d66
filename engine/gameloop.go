package engine

import (
	"context"
	"fmt"
	"time"
)

// Action is a single step executed once per loop iteration.
type Action func()

// LoopStats provides statistics about game loop execution.
type LoopStats struct {
	ActionCount int
	Iterations  int64
	Actions     []ActionStats
}

// ActionStats provides execution statistics for a single action.
type ActionStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type actionStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// GameLoop runs an ordered list of actions repeatedly until stopped.
//
// The loop enforces no ordering of its own: actions run in the order they were
// added, and it is up to the integrator to add input, clear, render and event
// polling steps in a sensible sequence.
type GameLoop struct {
	actions       []Action
	actionStats   []*actionStatsInternal
	running       bool
	iterations    int64
	maxIterations int64
}

// NewGameLoop creates an empty game loop.
func NewGameLoop() *GameLoop {
	return &GameLoop{
		actions: make([]Action, 0),
	}
}

// AddAction appends an action to the end of the per-iteration list.
func (l *GameLoop) AddAction(action Action) {
	l.AddNamedAction(fmt.Sprintf("action-%d", len(l.actions)), action)
}

// AddNamedAction appends an action with a name used in statistics.
func (l *GameLoop) AddNamedAction(name string, action Action) {
	l.actions = append(l.actions, action)
	l.actionStats = append(l.actionStats, &actionStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// SetMaxIterations caps the number of iterations Loop and Run perform.
// Zero means unlimited.
func (l *GameLoop) SetMaxIterations(n int64) {
	l.maxIterations = n
}

// Stop requests the loop to end. It takes effect at the next iteration
// boundary, so the remaining actions of the current iteration still run.
func (l *GameLoop) Stop() {
	l.running = false
}

// Running reports whether the loop has not been stopped.
func (l *GameLoop) Running() bool {
	return l.running
}

// Loop executes all actions repeatedly until Stop is called.
// A panic inside an action is not recovered.
func (l *GameLoop) Loop() {
	l.Run(context.Background())
}

// Run is Loop with an additional exit when ctx is done.
// The context is checked at the same boundary as the running flag.
func (l *GameLoop) Run(ctx context.Context) {
	l.running = true
	Logger().Info("game loop started", "actions", len(l.actions))

	var ran int64
	for l.running {
		if ctx.Err() != nil {
			l.running = false
			break
		}
		if l.maxIterations > 0 && ran >= l.maxIterations {
			l.running = false
			break
		}

		l.Once()
		ran++
	}

	Logger().Info("game loop stopped", "iterations", ran)
}

// Once executes every action exactly once, in order.
// It does not look at the running flag; callback-driven backends use it to
// drive the loop from their own frame callback.
func (l *GameLoop) Once() {
	for i, action := range l.actions {
		start := time.Now()
		action()
		duration := time.Since(start)

		stats := l.actionStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	l.iterations++
}

// Start marks the loop as running without entering Loop.
// Callback-driven backends call it before driving the loop through Once.
func (l *GameLoop) Start() {
	l.running = true
}

// Stats returns statistics about action execution.
func (l *GameLoop) Stats() *LoopStats {
	stats := &LoopStats{
		ActionCount: len(l.actions),
		Iterations:  l.iterations,
		Actions:     make([]ActionStats, len(l.actionStats)),
	}

	for i, internal := range l.actionStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Actions[i] = ActionStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
