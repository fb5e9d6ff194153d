package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/crab/frame"
	"github.com/plus3/crab/game"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Interval   time.Duration
	InputEvery uint64
	Seed       uint64

	// Results
	Ticks         uint64
	TotalTime     time.Duration
	Scores        [2]int
	Presses       [2]int
	CatchSounds   int
	MusicStarts   int
	Snacks        int
	SnackCount    int
	SnacksIntact  bool
	CrabX         float64
	Steps         []frame.SystemStats
	Driver        []frame.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Collect copies the end-of-run game state into the report.
func (r *Report) Collect(s *soak, driver *frame.SchedulerStats) {
	st := s.state
	r.Ticks = st.Frames()
	r.Scores = [2]int{st.Player(game.Player1).Score(), st.Player(game.Player2).Score()}
	r.Presses = s.presses
	r.CatchSounds = s.catch.plays
	r.MusicStarts = s.music.plays
	r.Snacks = len(st.Snacks())
	r.SnackCount = st.Config().SnackCount
	r.SnacksIntact = r.Snacks == r.SnackCount
	r.CrabX = st.Crab().Location().X
	r.Steps = st.Stats().Systems
	r.Driver = driver.Systems
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Crab Soak Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Frame Interval:** {{.Interval}}
- **Input Every:** {{.InputEvery}} frames
- **Seed:** {{.Seed}}

## Game Results
- **Ticks:** {{.Ticks}}
- **Total Time:** {{.TotalTime}}
- **Player 1:** {{index .Scores 0}} catches, {{index .Presses 0}} key presses
- **Player 2:** {{index .Scores 1}} catches, {{index .Presses 1}} key presses
- **Catch Sounds:** {{.CatchSounds}}
- **Music Starts:** {{.MusicStarts}}
- **Crab X:** {{printf "%.1f" .CrabX}}
- **Snack Pool:** {{.Snacks}} of {{.SnackCount}}{{if not .SnacksIntact}} (CHANGED){{end}}

## Frame Steps
| Step | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Steps}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Driver
| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Driver}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
