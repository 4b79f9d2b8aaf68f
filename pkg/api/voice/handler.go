// Package voice bridges the browser's microphone to the live-audio session
// over a websocket: binary PCM frames upstream, scheduled synthesized audio
// downstream, with an explicit interrupt control message.
package voice

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"robocup_platform/pkg/core/prompt"
	"robocup_platform/pkg/core/voice"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The dashboard is served from a different origin in local dev.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler owns the websocket endpoint for live voice.
type Handler struct {
	Model     string
	VoiceName string
	Log       *zap.Logger
}

// NewHandler creates a voice handler.
func NewHandler(model, voiceName string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Model: model, VoiceName: voiceName, Log: log}
}

// controlMessage is a client text frame: {"type":"interrupt"} or {"type":"close"}.
type controlMessage struct {
	Type string `json:"type"`
}

// serverMessage is one downstream event.
type serverMessage struct {
	Type    string `json:"type"`              // "audio", "closed"
	Data    string `json:"data,omitempty"`    // base64 PCM16 @ 24 kHz
	StartMs int64  `json:"start_ms,omitempty"` // playback offset on the session clock
}

// HandleStream upgrades to a websocket, opens the live session and pipes both
// directions until either side closes. Capture and playback run concurrently.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	systemInstruction, err := prompt.Get().SystemPrompt("assistant.voice")
	if err != nil {
		h.Log.Warn("voice prompt missing, proceeding without system instruction", zap.Error(err))
	}

	// Gorilla permits one concurrent writer; all downstream frames funnel
	// through this channel.
	outbound := make(chan serverMessage, 32)

	session, err := voice.Dial(r.Context(), voice.Config{
		Model:             h.Model,
		VoiceName:         h.VoiceName,
		SystemInstruction: systemInstruction,
	}, h.Log, func(frame voice.OutputFrame) {
		if frame.Source.Stopped() {
			return
		}
		msg := serverMessage{
			Type:    "audio",
			Data:    base64.StdEncoding.EncodeToString(voice.EncodePCM16(frame.Source.Buffer.Samples)),
			StartMs: frame.Source.StartAt.Milliseconds(),
		}
		select {
		case outbound <- msg:
		default:
			// Slow client: dropping a frame beats wedging the receive loop.
		}
	})
	if err != nil {
		h.Log.Warn("failed to open live session", zap.Error(err))
		conn.WriteJSON(serverMessage{Type: "closed"})
		return
	}
	defer session.Close()

	go func() {
		for {
			select {
			case msg := <-outbound:
				if err := conn.WriteJSON(msg); err != nil {
					session.Close()
					return
				}
			case <-session.Done():
				conn.WriteJSON(serverMessage{Type: "closed"})
				conn.Close()
				return
			}
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			// Client went away; Close releases capture and playback before returning.
			session.Close()
			return
		}

		switch msgType {
		case websocket.BinaryMessage:
			samples, err := voice.DecodePCM16(data)
			if err != nil {
				h.Log.Warn("dropping undecodable capture frame", zap.Error(err))
				continue
			}
			if err := session.SendFrame(samples); err != nil {
				session.Close()
				return
			}
		case websocket.TextMessage:
			var ctrl controlMessage
			if err := json.Unmarshal(data, &ctrl); err != nil {
				continue
			}
			switch ctrl.Type {
			case "interrupt":
				session.Interrupt()
			case "close":
				session.Close()
				return
			}
		}
	}
}
