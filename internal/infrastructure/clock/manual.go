package clock

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Manual is a deterministic Clock and Scheduler over a clockwork fake clock.
// Time only moves through Advance, and due callbacks run synchronously on the
// caller's goroutine in due-time order.
type Manual struct {
	fake *clockwork.FakeClock

	mu    sync.Mutex
	seq   int
	tasks map[*manualTask]struct{}
}

type manualTask struct {
	seq   int
	due   time.Time
	f     func()
	timer clockwork.Timer
	fired chan struct{}
}

var (
	_ Clock     = (*Manual)(nil)
	_ Scheduler = (*Manual)(nil)
)

func NewManual(start time.Time) *Manual {
	return &Manual{
		fake:  clockwork.NewFakeClockAt(start),
		tasks: map[*manualTask]struct{}{},
	}
}

func (m *Manual) Now() time.Time {
	return m.fake.Now()
}

// AfterFunc arms a fake timer. The timer only signals expiry; Advance runs f.
func (m *Manual) AfterFunc(d time.Duration, f func()) Cancel {
	m.mu.Lock()
	m.seq++
	task := &manualTask{seq: m.seq, due: m.fake.Now().Add(d), f: f, fired: make(chan struct{}, 1)}
	task.timer = m.fake.AfterFunc(d, func() { task.fired <- struct{}{} })
	m.tasks[task] = struct{}{}
	m.mu.Unlock()

	return func() bool {
		m.mu.Lock()
		_, pending := m.tasks[task]
		delete(m.tasks, task)
		m.mu.Unlock()
		if !pending {
			return false
		}
		task.timer.Stop()
		return true
	}
}

// Pending returns the number of scheduled callbacks that have not run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves time forward by d and runs every callback that became due,
// including callbacks scheduled by those callbacks.
func (m *Manual) Advance(d time.Duration) {
	target := m.fake.Now().Add(d)
	for {
		next := m.takeDue(target)
		if next == nil {
			break
		}
		m.advanceTo(next.due)
		<-next.fired
		next.f()
	}
	m.advanceTo(target)
}

// takeDue removes and returns the earliest task due at or before target.
func (m *Manual) takeDue(target time.Time) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	var next *manualTask
	for t := range m.tasks {
		if t.due.After(target) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	if next != nil {
		delete(m.tasks, next)
	}
	return next
}

func (m *Manual) advanceTo(t time.Time) {
	step := t.Sub(m.fake.Now())
	if step < 0 {
		step = 0
	}
	m.fake.Advance(step)
}
