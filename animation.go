package zoomview

import "time"

// resetDuration is the fixed length of every convergence animation:
// reset, re-center and double-tap zoom all take this long.
const resetDuration = 200 * time.Millisecond

// animation linearly interpolates the scale and translation components
// of a matrix from begin to target over a fixed duration.
//
// Progress is driven cooperatively: the animation captures its start
// time on the first call to at, and the caller is expected to keep
// calling at from its frame callback until it reports done. When the
// animation completes, at returns the target matrix exactly, so no
// floating-point drift survives a finished animation.
type animation struct {
	begin    Matrix
	target   Matrix
	duration time.Duration

	started bool
	start   time.Time
}

func newAnimation(begin, target Matrix) *animation {
	return &animation{begin: begin, target: target, duration: resetDuration}
}

// at returns the interpolated matrix for the given time and whether the
// animation has completed.
func (a *animation) at(now time.Time) (Matrix, bool) {
	if !a.started {
		a.started = true
		a.start = now
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration || a.duration <= 0 {
		return a.target, true
	}
	t := float64(elapsed) / float64(a.duration)
	return a.begin.Lerp(a.target, t), false
}
