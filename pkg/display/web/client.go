package web

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a websocket connection registered with a Hub.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	Send     chan []byte
	ID       uint8
	Metadata struct {
		RemoteAddr string
		UserAgent  string
	}
	// latency is the average round trip time in milliseconds
	latency     atomic.Uint32
	connectedAt time.Time
}

// ReadPump reads messages from the client until the connection is
// closed, then unregisters it.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case System:
			if len(message) < 3 {
				continue
			}
			c.hub.setting(message[1], message[2])
		case Layer:
			if len(message) < 3 {
				continue
			}
			c.hub.toggle(message[1], message[2] != 0)
		case Closing:
			return
		default:
			c.hub.log.Debugf("web: unknown message %d from client %d", message[0], c.ID)
		}
	}
}

// WritePump writes queued messages to the client until the hub closes
// its Send channel.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		// try to write message to client
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			c.hub.log.Debugf("web: writing to client %d: %v", c.ID, err)
			return
		}

		// update average latency
		rtt, err := latency(c.conn.UnderlyingConn())
		if err != nil {
			continue
		}
		avg := c.latency.Load()
		c.latency.Store((avg*9 + uint32(rtt.Milliseconds())) / 10)
	}

	// connection hub closed the connection
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
