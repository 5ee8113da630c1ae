package live

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Handler receives the raw payload of a named event
type Handler func(data json.RawMessage)

// event mirrors the server's wire frame
type event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Conn is a consumer side of the real-time event channel. It dispatches
// each received frame to the handlers subscribed to that event name.
type Conn struct {
	ws *websocket.Conn

	mu       sync.Mutex
	handlers map[string]map[int]Handler
	nextID   int
	closed   bool
}

// Dial connects to the event channel, e.g. "ws://host:5000/ws", and
// starts the read loop.
func Dial(ctx context.Context, url string) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	c := &Conn{
		ws:       ws,
		handlers: make(map[string]map[int]Handler),
	}
	go c.readLoop()
	return c, nil
}

// Subscribe registers a handler for an event name and returns its
// unsubscribe function.
func (c *Conn) Subscribe(eventName string, fn Handler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	if c.handlers[eventName] == nil {
		c.handlers[eventName] = make(map[int]Handler)
	}
	c.handlers[eventName][id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers[eventName], id)
	}
}

// Send pushes a named event to the server
func (c *Conn) Send(eventName string, data interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{"event": eventName, "data": data})
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

// Close tears the connection down; the read loop exits
func (c *Conn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.ws.Close()
}

func (c *Conn) readLoop() {
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			return
		}

		var ev event
		if err := json.Unmarshal(message, &ev); err != nil {
			continue
		}

		c.mu.Lock()
		fns := make([]Handler, 0, len(c.handlers[ev.Event]))
		for _, fn := range c.handlers[ev.Event] {
			fns = append(fns, fn)
		}
		c.mu.Unlock()

		for _, fn := range fns {
			fn(ev.Data)
		}
	}
}
