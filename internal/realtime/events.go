package realtime

// Lifecycle event names pushed to connected clients after each mutation
const (
	EventUserCreated = "userCreated"
	EventUserUpdated = "userUpdated"
	EventUserDeleted = "userDeleted"

	EventPostCreated = "postCreated"
	EventPostUpdated = "postUpdated"
	EventPostDeleted = "postDeleted"

	EventSaveCreated = "saveCreated"
	EventSaveUpdated = "saveUpdated"
	EventSaveDeleted = "saveDeleted"

	EventContactCreated = "contactCreated"
	EventContactUpdated = "contactUpdated"
	EventContactDeleted = "contactDeleted"

	// EventMessage frames received from a client are re-broadcast to everyone
	EventMessage = "message"
)

// Event is the wire frame carried over the websocket channel
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Notifier pushes a named event with a payload to all connected clients.
// Delivery is best-effort with no acknowledgement or replay.
type Notifier interface {
	Emit(event string, data interface{})
}
