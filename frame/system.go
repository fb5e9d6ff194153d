package frame

// System is one step of a frame. Systems are executed in the order they were
// registered with a Scheduler and may keep their own state between frames.
type System interface {
	Execute(f *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(f *Frame)

func (fn SystemFunc) Execute(f *Frame) {
	fn(f)
}
