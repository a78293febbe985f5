package main

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxReconnectAttempts = 5
	reconnectBaseDelay   = 2 * time.Second
	writeTimeout         = 5 * time.Second
)

type connState int32

const (
	stateDisconnected connState = iota
	stateConnecting
	stateConnected
)

func (s connState) String() string {
	switch s {
	case stateConnecting:
		return "connecting"
	case stateConnected:
		return "connected"
	}
	return "disconnected"
}

// connStatus is a point-in-time copy of the connection state for the HUD.
type connStatus struct {
	state       connState
	attempts    int
	terminal    bool
	connectedAt time.Time
	bytesIn     uint64
}

// serverConn owns the websocket lifecycle: dialing, the read loop, the
// reconnect backoff, and outbound sends. Inbound messages are decoded and
// handed to dispatch in arrival order from a single goroutine, so handlers
// never see reordered traffic.
type serverConn struct {
	url      string
	username string
	dispatch func(msg interface{})

	mu          sync.Mutex
	ws          *websocket.Conn
	state       connState
	attempts    int
	terminal    bool
	gen         int
	retry       *time.Timer
	connectedAt time.Time
	bytesIn     uint64

	writeMu sync.Mutex
}

func newServerConn(url, username string, dispatch func(msg interface{})) *serverConn {
	return &serverConn{url: url, username: username, dispatch: dispatch}
}

// connect starts an asynchronous dial. Success or failure is observed
// through later state transitions, never a return value.
func (c *serverConn) connect() {
	c.mu.Lock()
	if c.terminal || c.state != stateDisconnected {
		c.mu.Unlock()
		return
	}
	c.state = stateConnecting
	c.mu.Unlock()
	go c.dial()
}

func (c *serverConn) dial() {
	logInfo("connecting to %s", c.url)
	ws, _, err := websocket.DefaultDialer.Dial(c.url, nil)

	c.mu.Lock()
	if c.state != stateConnecting {
		c.mu.Unlock()
		if ws != nil {
			_ = ws.Close()
		}
		return
	}
	if err != nil {
		c.state = stateDisconnected
		c.mu.Unlock()
		logError("connect %s: %v", c.url, err)
		c.scheduleReconnect()
		return
	}
	if c.retry != nil {
		c.retry.Stop()
		c.retry = nil
	}
	c.ws = ws
	c.state = stateConnected
	c.attempts = 0
	c.gen++
	gen := c.gen
	c.connectedAt = time.Now()
	c.mu.Unlock()

	logInfo("connected to %s", c.url)
	c.send(joinCommand{Action: "join_game", Username: c.username})
	go c.readLoop(ws, gen)
}

// readLoop decodes and dispatches inbound messages until the channel dies.
// A malformed message is logged and dropped; it never tears the channel
// down or partially applies.
func (c *serverConn) readLoop(ws *websocket.Conn, gen int) {
	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			c.handleClose(gen, err)
			return
		}
		c.mu.Lock()
		c.bytesIn += uint64(len(payload))
		c.mu.Unlock()

		msg, err := decodeServerMessage(payload)
		if err != nil {
			logError("dropping message: %v", err)
			continue
		}
		if c.dispatch != nil {
			c.dispatch(msg)
		}
	}
}

func (c *serverConn) handleClose(gen int, err error) {
	c.mu.Lock()
	if gen != c.gen || c.state != stateConnected {
		c.mu.Unlock()
		return
	}
	_ = c.ws.Close()
	c.ws = nil
	c.state = stateDisconnected
	c.mu.Unlock()

	logError("connection lost: %v", err)
	c.scheduleReconnect()
}

// nextRetry advances the attempt counter and reports the backoff delay for
// it. Exhausting the attempt budget flips the connection into its terminal
// state and reports false.
func (c *serverConn) nextRetry() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.terminal {
		return 0, false
	}
	c.attempts++
	if c.attempts > maxReconnectAttempts {
		c.terminal = true
		return 0, false
	}
	return reconnectDelay(c.attempts), true
}

func (c *serverConn) scheduleReconnect() {
	delay, ok := c.nextRetry()
	if !ok {
		logError("gave up after %d reconnect attempts; restart the client to try again", maxReconnectAttempts)
		return
	}
	c.mu.Lock()
	attempt := c.attempts
	c.retry = time.AfterFunc(delay, c.connect)
	c.mu.Unlock()
	logInfo("reconnecting in %v (attempt %d/%d)", delay, attempt, maxReconnectAttempts)
}

// reconnectDelay scales linearly with the attempt count.
func reconnectDelay(attempt int) time.Duration {
	return time.Duration(attempt) * reconnectBaseDelay
}

// send marshals and transmits one command. When the channel is not open the
// message is silently dropped; callers re-attempt on the next natural input
// rather than queueing.
func (c *serverConn) send(v interface{}) {
	c.mu.Lock()
	ws := c.ws
	open := c.state == stateConnected
	c.mu.Unlock()
	if !open || ws == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		logError("marshal command: %v", err)
		return
	}
	c.writeMu.Lock()
	_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	err = ws.WriteMessage(websocket.TextMessage, data)
	c.writeMu.Unlock()
	if err != nil {
		logDebug("send failed: %v", err)
	}
}

func (c *serverConn) status() connStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return connStatus{
		state:       c.state,
		attempts:    c.attempts,
		terminal:    c.terminal,
		connectedAt: c.connectedAt,
		bytesIn:     c.bytesIn,
	}
}

// shutdown closes the connection for good. Used on process exit.
func (c *serverConn) shutdown() {
	c.mu.Lock()
	c.terminal = true
	if c.retry != nil {
		c.retry.Stop()
		c.retry = nil
	}
	ws := c.ws
	c.ws = nil
	c.state = stateDisconnected
	c.mu.Unlock()
	if ws != nil {
		_ = ws.Close()
	}
}
