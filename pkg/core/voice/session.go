// Package voice drives the bidirectional live-audio session with the
// generative service: microphone PCM up, synthesized PCM down, with gapless
// playback scheduling and mid-stream interruption.
package voice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// State is the session lifecycle: IDLE -> CONNECTING -> OPEN -> CLOSED.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// ErrSessionClosed is returned when sending on a session that is not OPEN.
var ErrSessionClosed = errors.New("voice session closed")

// Config holds the tunables for one live session.
type Config struct {
	Model             string // native-audio live model
	VoiceName         string // prebuilt voice, e.g. "Zephyr"
	SystemInstruction string
}

// OutputFrame is one scheduled chunk of synthesized audio for the client to play.
type OutputFrame struct {
	Source *Source
}

// Session is a live bidirectional audio stream. Capture and playback run
// concurrently: SendFrame may be called while the receive loop is delivering
// synthesized audio.
type Session struct {
	id    string
	cfg   Config
	log   *zap.Logger
	state atomic.Int32

	live  *genai.Session
	sched *Scheduler

	onAudio func(OutputFrame)

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Dial opens a live session. onAudio is invoked from the receive goroutine for
// each successfully decoded and scheduled audio buffer.
func Dial(ctx context.Context, cfg Config, log *zap.Logger, onAudio func(OutputFrame)) (*Session, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash-native-audio-preview-12-2025"
	}
	if cfg.VoiceName == "" {
		cfg.VoiceName = "Zephyr"
	}
	if log == nil {
		log = zap.NewNop()
	}
	if onAudio == nil {
		onAudio = func(OutputFrame) {}
	}

	s := &Session{
		id:      uuid.New().String(),
		cfg:     cfg,
		sched:   NewScheduler(nil),
		onAudio: onAudio,
		done:    make(chan struct{}),
	}
	s.log = log.With(zap.String("voice_session", s.id))
	s.state.Store(int32(StateConnecting))

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		s.state.Store(int32(StateClosed))
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: cfg.VoiceName},
			},
		},
	}
	if cfg.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: cfg.SystemInstruction}},
		}
	}

	live, err := client.Live.Connect(ctx, cfg.Model, config)
	if err != nil {
		s.state.Store(int32(StateClosed))
		return nil, fmt.Errorf("live connect failed: %w", err)
	}

	s.live = live
	s.state.Store(int32(StateOpen))
	s.log.Info("voice session opened", zap.String("model", cfg.Model))

	go s.receiveLoop()
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// Done is closed once the session has fully shut down.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err reports why the session closed, nil for a clean local close.
func (s *Session) Err() error { return s.closeErr }

// Scheduler exposes the playback queue, mainly for the transport layer and tests.
func (s *Session) Scheduler() *Scheduler { return s.sched }

// SendFrame encodes one captured microphone frame and streams it upward.
// The capture callback fires independently of playback; both directions
// proceed concurrently.
func (s *Session) SendFrame(samples []float32) error {
	if s.State() != StateOpen {
		return ErrSessionClosed
	}
	return s.live.SendRealtimeInput(genai.LiveRealtimeInput{
		Media: &genai.Blob{
			Data:     EncodePCM16(samples),
			MIMEType: InputMIMEType,
		},
	})
}

// Interrupt stops all scheduled playback and resets the cursor so the next
// utterance starts fresh. The remote interruption signal takes the same path.
func (s *Session) Interrupt() {
	s.sched.Interrupt()
}

// Close shuts the session down synchronously: the upstream connection is
// closed, scheduled playback is cleared, and the state reads CLOSED before
// Close returns. Safe to call from any goroutine, any number of times.
func (s *Session) Close() error {
	s.shutdown(nil)
	return nil
}

func (s *Session) shutdown(cause error) {
	s.closeOnce.Do(func() {
		s.closeErr = cause
		s.state.Store(int32(StateClosed))
		s.sched.Interrupt()
		if s.live != nil {
			s.live.Close()
		}
		close(s.done)
		if cause != nil {
			s.log.Warn("voice session closed", zap.Error(cause))
		} else {
			s.log.Info("voice session closed")
		}
	})
}

// receiveLoop drains server messages: audio parts are decoded, scheduled for
// gapless playback and handed to the transport; an interruption clears the
// queue; a receive error or remote close ends the session.
func (s *Session) receiveLoop() {
	for {
		msg, err := s.live.Receive()
		if err != nil {
			if s.State() == StateClosed {
				return
			}
			s.shutdown(fmt.Errorf("live receive: %w", err))
			return
		}
		if msg == nil || msg.ServerContent == nil {
			continue
		}

		if msg.ServerContent.ModelTurn != nil {
			for _, part := range msg.ServerContent.ModelTurn.Parts {
				if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
					continue
				}
				samples, err := DecodePCM16(part.InlineData.Data)
				if err != nil {
					// A torn frame is logged and skipped; it never ends the session.
					s.log.Warn("dropping undecodable audio frame", zap.Error(err))
					continue
				}
				src := s.sched.Schedule(Buffer{Samples: samples, SampleRate: OutputSampleRate})
				s.onAudio(OutputFrame{Source: src})
			}
		}

		if msg.ServerContent.Interrupted {
			s.sched.Interrupt()
		}
	}
}
