// Package debugui draws a Dear ImGui overlay over a running game: scores, the
// crab and claw positions, the snack pool, per-step timings and frame times.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/crab/frame"
)

// Item holds a Dear ImGui render function. Items render once per frame, after
// every other system of the overlay scheduler has run.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes the input state and defers every item's render function.
type System struct {
	Items []Item
	Input *InputState
}

// Execute updates input state and queues all render functions.
func (s *System) Execute(f *frame.Frame) {
	if s.Input != nil {
		io := imgui.CurrentIO()
		s.Input.WantCaptureMouse = io.WantCaptureMouse()
		s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items {
		f.Commands.Defer(item.Render)
	}
}
