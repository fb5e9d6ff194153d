package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// FrameHistory is a ring buffer of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	if frames < 1 {
		frames = 1
	}
	return &FrameHistory{samples: make([]float32, frames)}
}

// Push records one frame time.
func (h *FrameHistory) Push(dt time.Duration) {
	h.samples[h.next] = float32(dt.Seconds() * 1000.0)
	h.next = (h.next + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average returns the mean of the recorded frame times in milliseconds, or
// zero before the first Push.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples[:h.filled] {
		total += ms
	}
	return total / float32(h.filled)
}

// FPS derives frames per second from Average.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg == 0 {
		return 0
	}
	return 1000.0 / avg
}

func (h *FrameHistory) Len() int { return h.filled }

// Samples returns the raw buffer in storage order.
func (h *FrameHistory) Samples() []float32 { return h.samples }

func (h *FrameHistory) render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(520, 330), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(270, 160), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := h.Average()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, h.FPS()))
	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &h.samples[0], int32(len(h.samples)))

	imgui.End()
}

// FrameTimer measures the wall time between successive calls to Tick.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now(), now: time.Now}
}

func (ft *FrameTimer) Tick() time.Duration {
	now := ft.now()
	delta := now.Sub(ft.last)
	ft.last = now
	return delta
}
