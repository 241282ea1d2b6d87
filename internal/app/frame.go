package app

// stepsThisFrame decides how many sim steps a frame runs. due is what the
// pacer released. A single-step request only applies while paused; a
// running scan already advances every frame.
func stepsThisFrame(due int, paused, tickOnce bool) int {
	if !paused {
		return due
	}
	if tickOnce {
		return 1
	}
	return 0
}
