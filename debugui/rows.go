package debugui

import (
	"fmt"

	"github.com/plus3/crab/frame"
	"github.com/plus3/crab/game"
	"gonum.org/v1/gonum/spatial/r2"
)

// SnackRow is one line of the snack table.
type SnackRow struct {
	Index  int
	X, Y   float64
	Speed  float64
	Active bool
}

func SnackRows(s *game.State) []SnackRow {
	snacks := s.Snacks()
	rows := make([]SnackRow, len(snacks))
	for i := range snacks {
		loc := snacks[i].Location()
		rows[i] = SnackRow{
			Index:  i,
			X:      loc.X,
			Y:      loc.Y,
			Speed:  snacks[i].Velocity().Y,
			Active: snacks[i].Active(),
		}
	}
	return rows
}

// ClawRow describes one player's claw geometry.
type ClawRow struct {
	Player game.PlayerID
	Score  int
	Body   r2.Vec
	Joint  r2.Vec
	Origin r2.Vec
}

func ClawRows(s *game.State) [2]ClawRow {
	var rows [2]ClawRow
	for i, id := range []game.PlayerID{game.Player1, game.Player2} {
		p := s.Player(id)
		rows[i] = ClawRow{
			Player: id,
			Score:  p.Score(),
			Body:   p.Claw().BodyPoint(),
			Joint:  p.Claw().JointPoint(),
			Origin: p.Claw().Origin(),
		}
	}
	return rows
}

// StepRow is the formatted timing line of one update step.
type StepRow struct {
	Name  string
	Runs  string
	Last  string
	Avg   string
	Worst string
}

func StepRows(stats *frame.SchedulerStats) []StepRow {
	rows := make([]StepRow, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		rows = append(rows, StepRow{
			Name:  sys.Name,
			Runs:  fmt.Sprintf("%d", sys.ExecutionCount),
			Last:  sys.LastDuration.String(),
			Avg:   sys.AvgDuration.String(),
			Worst: sys.MaxDuration.String(),
		})
	}
	return rows
}

func formatVec(v r2.Vec) string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
}
