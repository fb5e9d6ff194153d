package frame

// Frame is handed to every system during a single Scheduler.Once call.
type Frame struct {
	// DeltaTime is the elapsed time in seconds supplied by the caller.
	DeltaTime float64
	// Index counts frames starting at zero.
	Index    uint64
	Commands *Commands
}

func newFrame(dt float64, index uint64, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Index:     index,
		Commands:  commands,
	}
}
