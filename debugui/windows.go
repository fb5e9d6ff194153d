package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/crab/game"
)

// Overlay renders the inspection windows for one game.
type Overlay struct {
	state   *game.State
	history *FrameHistory
	timer   *FrameTimer
	paused  bool
}

func NewOverlay(s *game.State, historyFrames int) *Overlay {
	return &Overlay{
		state:   s,
		history: NewFrameHistory(historyFrames),
		timer:   NewFrameTimer(),
	}
}

// Paused reports whether the simulation was paused from the Scores window.
func (o *Overlay) Paused() bool { return o.paused }

func (o *Overlay) History() *FrameHistory { return o.history }

// Items returns the overlay windows in draw order.
func (o *Overlay) Items() []Item {
	return []Item{
		{Render: o.renderScores},
		{Render: o.renderCrab},
		{Render: o.renderClaws},
		{Render: o.renderSnacks},
		{Render: o.renderSteps},
		{Render: func() {
			o.history.Push(o.timer.Tick())
			o.history.render()
		}},
	}
}

func (o *Overlay) renderScores() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 60), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(220, 130), imgui.CondOnce)

	if !imgui.BeginV("Scores", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, row := range ClawRows(o.state) {
		imgui.Text(fmt.Sprintf("%s: %d", row.Player, row.Score))
	}
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Mode: %s", o.state.Mode()))
	imgui.Text(fmt.Sprintf("Frame: %d  dt: %s", o.state.Frames(), o.state.DeltaTime()))
	imgui.Checkbox("Paused", &o.paused)

	imgui.End()
}

func (o *Overlay) renderCrab() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 200), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(220, 90), imgui.CondOnce)

	if !imgui.BeginV("Crab", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	crab := o.state.Crab()
	imgui.Text("Location: " + formatVec(crab.Location()))
	imgui.Text("Velocity: " + formatVec(crab.Velocity()))

	imgui.End()
}

func (o *Overlay) renderClaws() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 300), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 190), imgui.CondOnce)

	if !imgui.BeginV("Claws", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, row := range ClawRows(o.state) {
		if imgui.TreeNodeStr(row.Player.String()) {
			imgui.BulletText("Body:   " + formatVec(row.Body))
			imgui.BulletText("Joint:  " + formatVec(row.Joint))
			imgui.BulletText("Origin: " + formatVec(row.Origin))
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (o *Overlay) renderSnacks() {
	imgui.SetNextWindowPosV(imgui.NewVec2(520, 60), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(270, 260), imgui.CondOnce)

	if !imgui.BeginV("Snacks", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SnackTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Location")
		imgui.TableSetupColumn("Speed")
		imgui.TableSetupColumn("Active")
		imgui.TableHeadersRow()

		for _, row := range SnackRows(o.state) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Index))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.0f, %.0f)", row.X, row.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", row.Speed))
			imgui.TableNextColumn()
			if row.Active {
				imgui.Text("yes")
			} else {
				imgui.TextColored(imgui.NewVec4(0.6, 0.6, 0.6, 1.0), "no")
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (o *Overlay) renderSteps() {
	imgui.SetNextWindowPosV(imgui.NewVec2(240, 60), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(270, 170), imgui.CondOnce)

	if !imgui.BeginV("Frame Steps", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := o.state.Stats()
	imgui.Text(fmt.Sprintf("Frames: %d  Executions: %d", stats.Frames, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("StepTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Step")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, row := range StepRows(stats) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Name)
			imgui.TableNextColumn()
			imgui.Text(row.Last)
			imgui.TableNextColumn()
			imgui.Text(row.Avg)
			imgui.TableNextColumn()
			imgui.Text(row.Worst)
		}

		imgui.EndTable()
	}

	imgui.End()
}
