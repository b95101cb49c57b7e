package cubed

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Progress receives notifications about long-running work.
//
// Implementations must be safe to call from multiple Goroutines.
type Progress interface {
	// Reset is called once before work begins with an estimate of the total
	// number of units of work.
	Reset(total int)

	// Increment is called once per finished unit of work.
	Increment()
}

// A Counter is a Progress which tracks counts atomically.
type Counter struct {
	total int64
	done  int64
}

// Reset sets the total and clears the done count.
func (c *Counter) Reset(total int) {
	atomic.StoreInt64(&c.total, int64(total))
	atomic.StoreInt64(&c.done, 0)
}

// Increment records one unit of completed work.
func (c *Counter) Increment() {
	atomic.AddInt64(&c.done, 1)
}

// Total gets the most recent total passed to Reset.
func (c *Counter) Total() int {
	return int(atomic.LoadInt64(&c.total))
}

// Done gets the number of increments since the last Reset.
func (c *Counter) Done() int {
	return int(atomic.LoadInt64(&c.done))
}

// A LogProgress is a Progress which logs every time another tenth of the
// work has been completed.
type LogProgress struct {
	Logger *zap.Logger
	Name   string

	lock     sync.Mutex
	total    int
	done     int
	lastStep int
}

func (l *LogProgress) Reset(total int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.total = total
	l.done = 0
	l.lastStep = 0
}

func (l *LogProgress) Increment() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.done++
	if l.total <= 0 {
		return
	}
	step := l.done * 10 / l.total
	if step > l.lastStep {
		l.lastStep = step
		l.Logger.Info(
			"progress",
			zap.String("stage", l.Name),
			zap.Int("done", l.done),
			zap.Int("total", l.total),
		)
	}
}

type multiProgress []Progress

func (m multiProgress) Reset(total int) {
	for _, p := range m {
		p.Reset(total)
	}
}

func (m multiProgress) Increment() {
	for _, p := range m {
		p.Increment()
	}
}

// JoinProgress creates a Progress which forwards to every non-nil argument.
// The result is nil if no argument is non-nil.
func JoinProgress(ps ...Progress) Progress {
	var res multiProgress
	for _, p := range ps {
		if p != nil {
			res = append(res, p)
		}
	}
	if len(res) == 0 {
		return nil
	} else if len(res) == 1 {
		return res[0]
	}
	return res
}
