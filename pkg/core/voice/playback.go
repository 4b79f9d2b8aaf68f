package voice

import (
	"sync"
	"time"
)

// Buffer is one decoded chunk of playable audio.
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the playback length of the buffer.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

// Source is one scheduled playback of a buffer.
type Source struct {
	Buffer  Buffer
	StartAt time.Duration // offset on the scheduler's clock

	mu      sync.Mutex
	stopped bool
}

// Stop cancels the source. Safe to call more than once.
func (s *Source) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

// Stopped reports whether the source was cancelled.
func (s *Source) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Scheduler queues synthesized audio for gapless playback. It tracks a running
// next-start cursor so buffers line up back-to-back without overlap or gaps,
// and supports the mid-stream interruption the live protocol signals: stop
// everything scheduled, drop the queue, reset the cursor so the next utterance
// starts fresh.
type Scheduler struct {
	mu      sync.Mutex
	clock   func() time.Duration
	cursor  time.Duration
	pending []*Source
}

// NewScheduler creates a scheduler. A nil clock uses monotonic time from now.
func NewScheduler(clock func() time.Duration) *Scheduler {
	if clock == nil {
		epoch := time.Now()
		clock = func() time.Duration { return time.Since(epoch) }
	}
	return &Scheduler{clock: clock}
}

// Schedule queues a buffer directly after the last scheduled one. If playback
// has drained (cursor behind the clock), the buffer starts immediately instead
// of in the past.
func (s *Scheduler) Schedule(b Buffer) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if s.cursor < now {
		s.cursor = now
	}

	src := &Source{Buffer: b, StartAt: s.cursor}
	s.cursor += b.Duration()
	s.pending = append(s.pending, src)
	return src
}

// Interrupt stops every scheduled source, clears the queue and resets the
// cursor to zero.
func (s *Scheduler) Interrupt() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.cursor = 0
	s.mu.Unlock()

	for _, src := range pending {
		src.Stop()
	}
}

// Release drops a finished source from the queue.
func (s *Scheduler) Release(src *Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pending {
		if p == src {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of sources still queued.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Cursor returns the next playback start offset.
func (s *Scheduler) Cursor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}
