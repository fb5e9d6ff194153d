package frame

// Commands buffers work that must run after every system of the frame has
// executed, such as side effects on external collaborators.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, fn)
}

// Len reports how many commands are waiting for the next flush.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued functions in the order they were deferred and resets
// the buffer. Functions deferred while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
