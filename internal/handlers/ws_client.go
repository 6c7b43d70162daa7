package handlers

import (
	"github.com/gorilla/websocket"
)

type WSClient struct {
	Conn   *websocket.Conn
	SendCh chan []byte
}

func NewWSClient(conn *websocket.Conn) *WSClient {
	return &WSClient{
		Conn:   conn,
		SendCh: make(chan []byte, 32),
	}
}

func (c *WSClient) Send(payload []byte) {
	select {
	case c.SendCh <- payload:
	default:
		// drop instead of blocking a slow client
	}
}

func (c *WSClient) WritePump() {
	for msg := range c.SendCh {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
