package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/we/engine"
)

// LoopStatsPanel shows frame times and per-action durations of a game loop.
type LoopStatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewLoopStatsPanel(historyFrames int) *LoopStatsPanel {
	return &LoopStatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// record stores a frame time in milliseconds.
func (ls *LoopStatsPanel) record(deltaTime float32) {
	ls.frameHistory[ls.frameIndex] = deltaTime * 1000.0
	ls.frameIndex = (ls.frameIndex + 1) % ls.historyFrames
}

// averageFrameTime returns the mean of the history in milliseconds.
func (ls *LoopStatsPanel) averageFrameTime() float32 {
	var total float32
	for _, ft := range ls.frameHistory {
		total += ft
	}
	return total / float32(ls.historyFrames)
}

func (ls *LoopStatsPanel) Render(loop *engine.GameLoop, deltaTime float32) {
	if !imgui.BeginV("Loop Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ls.record(deltaTime)
	stats := loop.Stats()

	imgui.Text(fmt.Sprintf("Actions: %d", stats.ActionCount))
	imgui.Text(fmt.Sprintf("Iterations: %d", stats.Iterations))

	avg := ls.averageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ls.frameHistory[0], int32(len(ls.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ActionTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Action")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, action := range stats.Actions {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(action.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", action.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(action.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(action.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(action.MaxDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
