package game

import (
	"sync/atomic"

	"term-snake/game/types"
)

// HeadingSource supplies the heading requested for the next tick. The engine
// calls Take once at the start of each tick.
type HeadingSource interface {
	Take() (types.Direction, bool)
}

// HeadingLatch hands the latest requested heading from one input goroutine
// to the loop. Later requests overwrite earlier unread ones.
type HeadingLatch struct {
	next atomic.Int32
}

func NewHeadingLatch() *HeadingLatch {
	return &HeadingLatch{}
}

// Set records dir as the pending request. None clears it.
func (l *HeadingLatch) Set(dir types.Direction) {
	l.next.Store(int32(dir))
}

// Take returns and clears the pending request.
func (l *HeadingLatch) Take() (types.Direction, bool) {
	dir := types.Direction(l.next.Swap(int32(types.None)))
	return dir, dir != types.None
}
