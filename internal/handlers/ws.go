package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"eggbreak/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type stateEvent struct {
	Type  string           `json:"type"`
	State models.GameState `json:"state"`
}

// HandleWS upgrades the connection and streams state events until the
// client disconnects. Clients receive the current state on connect.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := NewWSClient(conn)
	s.Hub.Register(client)
	go client.WritePump()

	if payload, err := json.Marshal(stateEvent{Type: "state", State: s.Store.GameState(0)}); err == nil {
		client.Send(payload)
	}

	defer func() {
		s.Hub.Unregister(client)
		close(client.SendCh)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) broadcastState() {
	if s.Hub.ClientCount() == 0 {
		return
	}
	payload, err := json.Marshal(stateEvent{Type: "state", State: s.Store.GameState(0)})
	if err != nil {
		return
	}
	s.Hub.Broadcast(payload)
}
