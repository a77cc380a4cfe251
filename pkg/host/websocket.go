package host

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/loomui/loom/pkg/dom"
)

// EventFrame is the JSON frame the thin client sends for each captured DOM
// event.
type EventFrame struct {
	Node     string `json:"node"`
	Category string `json:"category"`
	Value    string `json:"value,omitempty"`
	Checked  bool   `json:"checked,omitempty"`
}

// SwapFrame is the JSON frame the host answers with: the re-serialized
// document for the client to swap in.
type SwapFrame struct {
	HTML string `json:"html"`
}

func (s *Server) handleWS(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.log.Info("client connected", "remote", conn.RemoteAddr().String())
	s.readLoop(req.Context(), conn)
}

// readLoop reads event frames until the connection closes or errors.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn) {
	tracer := otel.Tracer(s.config.Namespace)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		var frame EventFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.log.Error("read error", "error", err)
			}
			return
		}

		_, span := tracer.Start(ctx, "host.dispatch")
		span.SetAttributes(
			attribute.String("event.category", frame.Category),
			attribute.String("event.node", frame.Node),
		)
		html, ok := s.dispatch(frame)
		span.End()

		if !ok {
			continue
		}
		if err := conn.WriteJSON(SwapFrame{HTML: html}); err != nil {
			s.log.Error("write error", "error", err)
			return
		}
	}
}

// dispatch resolves the frame's target node, fires the event through the
// platform bubble path, and returns the re-serialized document. Frames for
// nodes that no longer exist are dropped: the client raced a re-render.
func (s *Server) dispatch(frame EventFrame) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := dom.FindByID(s.document, frame.Node)
	if target == nil {
		s.log.Warn("event for unknown node", "node", frame.Node, "category", frame.Category)
		return "", false
	}

	dom.Fire(target, &dom.Event{
		Category: frame.Category,
		Target:   target,
		Value:    frame.Value,
		Checked:  frame.Checked,
	})

	return s.document.HTML(), true
}
