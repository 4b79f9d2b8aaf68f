package voice

import (
	"testing"
	"time"
)

func buf(ms int) Buffer {
	// OutputSampleRate samples per second of silence
	n := OutputSampleRate * ms / 1000
	return Buffer{Samples: make([]float32, n), SampleRate: OutputSampleRate}
}

func TestSchedulerQueuesBackToBack(t *testing.T) {
	var now time.Duration
	s := NewScheduler(func() time.Duration { return now })

	first := s.Schedule(buf(100))
	second := s.Schedule(buf(250))
	third := s.Schedule(buf(50))

	if first.StartAt != 0 {
		t.Errorf("first start = %v, want 0", first.StartAt)
	}
	if second.StartAt != 100*time.Millisecond {
		t.Errorf("second start = %v, want 100ms", second.StartAt)
	}
	if third.StartAt != 350*time.Millisecond {
		t.Errorf("third start = %v, want 350ms", third.StartAt)
	}
	if s.Cursor() != 400*time.Millisecond {
		t.Errorf("cursor = %v, want 400ms", s.Cursor())
	}
}

func TestSchedulerNeverSchedulesInThePast(t *testing.T) {
	var now time.Duration
	s := NewScheduler(func() time.Duration { return now })

	s.Schedule(buf(100))

	// Queue drained: the clock has moved well past the cursor.
	now = 2 * time.Second
	late := s.Schedule(buf(100))
	if late.StartAt != 2*time.Second {
		t.Errorf("start = %v, want 2s (clock position)", late.StartAt)
	}
}

func TestInterruptStopsAndResets(t *testing.T) {
	var now time.Duration
	s := NewScheduler(func() time.Duration { return now })

	a := s.Schedule(buf(100))
	b := s.Schedule(buf(100))

	s.Interrupt()

	if !a.Stopped() || !b.Stopped() {
		t.Error("interrupt left scheduled sources running")
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d after interrupt, want 0", s.Pending())
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %v after interrupt, want 0", s.Cursor())
	}

	// The next utterance starts fresh.
	next := s.Schedule(buf(100))
	if next.StartAt != 0 {
		t.Errorf("post-interrupt start = %v, want 0", next.StartAt)
	}
}

func TestReleaseDropsFinishedSource(t *testing.T) {
	s := NewScheduler(func() time.Duration { return 0 })
	a := s.Schedule(buf(100))
	s.Schedule(buf(100))

	s.Release(a)
	if s.Pending() != 1 {
		t.Errorf("pending = %d after release, want 1", s.Pending())
	}
}

func TestPCMRoundTrip(t *testing.T) {
	in := []float32{0, 0.5, -0.5, 0.999, -1.0}
	out, err := DecodePCM16(EncodePCM16(in))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		diff := out[i] - in[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > 1.0/32768 {
			t.Errorf("sample %d: got %v, want ~%v", i, out[i], in[i])
		}
	}
}

func TestDecodeRejectsTornFrame(t *testing.T) {
	if _, err := DecodePCM16([]byte{0x01, 0x02, 0x03}); err == nil {
		t.Error("odd-length frame decoded without error")
	}
}

func TestEncodeClipsOutOfRange(t *testing.T) {
	data := EncodePCM16([]float32{2.0, -2.0})
	samples, err := DecodePCM16(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if samples[0] < 0.99 || samples[1] > -0.99 {
		t.Errorf("clipping failed: got %v", samples)
	}
}
