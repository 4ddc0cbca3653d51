package ui

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
