package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/anonto42/picture-pink/backend/internal/realtime"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liveServer exposes one list endpoint and the event channel, the same
// surface a watch consumes against the real API
type liveServer struct {
	hub *realtime.Hub
	srv *httptest.Server

	mu    sync.Mutex
	notes []note
}

func newLiveServer(t *testing.T) *liveServer {
	t.Helper()

	ls := &liveServer{hub: realtime.NewHub()}
	go ls.hub.Run()

	e := echo.New()
	e.GET("/api/notes", func(c echo.Context) error {
		ls.mu.Lock()
		defer ls.mu.Unlock()
		if len(ls.notes) == 0 {
			return response.Error(c, http.StatusNotFound, "No records found!")
		}
		return response.Success(c, http.StatusOK, "Notes found", ls.notes)
	})
	e.GET("/ws", ls.hub.ServeWS)

	ls.srv = httptest.NewServer(e)
	t.Cleanup(ls.srv.Close)
	return ls
}

func (ls *liveServer) setNotes(notes []note) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.notes = notes
}

func (ls *liveServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ls.srv.URL, "http") + "/ws"
}

func (ls *liveServer) dialWatch(t *testing.T) (*Watch[note], *Conn) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := Dial(ctx, ls.wsURL())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	client := NewClient(ls.srv.URL + "/api")
	watch, err := NewWatch(ctx, conn, "note", func(ctx context.Context) ([]note, error) {
		return List[note](ctx, client, "/notes")
	}, noteID)
	require.NoError(t, err)

	// the emit below must not race the registration
	waitFor(t, func() bool { return ls.hub.ClientCount() == 1 })
	return watch, conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatchMirrorsLifecycleEvents(t *testing.T) {
	ls := newLiveServer(t)
	ls.setNotes([]note{{ID: "a", Text: "one"}})

	watch, _ := ls.dialWatch(t)
	assert.Equal(t, 1, watch.Len())

	ls.hub.Emit("noteCreated", note{ID: "b", Text: "two"})
	waitFor(t, func() bool { return watch.Len() == 2 })

	ls.hub.Emit("noteUpdated", note{ID: "a", Text: "ONE"})
	waitFor(t, func() bool {
		for _, n := range watch.Snapshot() {
			if n.ID == "a" && n.Text == "ONE" {
				return true
			}
		}
		return false
	})

	// deletions arrive as the bare identifier
	ls.hub.Emit("noteDeleted", "a")
	waitFor(t, func() bool { return watch.Len() == 1 })
	assert.Equal(t, "b", watch.Snapshot()[0].ID)
}

func TestWatchDeletedEventWithFullDocument(t *testing.T) {
	ls := newLiveServer(t)
	ls.setNotes([]note{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}})

	watch, _ := ls.dialWatch(t)
	require.Equal(t, 2, watch.Len())

	ls.hub.Emit("noteDeleted", note{ID: "b", Text: "two"})
	waitFor(t, func() bool { return watch.Len() == 1 })
	assert.Equal(t, "a", watch.Snapshot()[0].ID)
}

func TestWatchStopsReceivingAfterStop(t *testing.T) {
	ls := newLiveServer(t)
	ls.setNotes([]note{{ID: "a", Text: "one"}})

	watch, conn := ls.dialWatch(t)
	watch.Stop()

	ls.hub.Emit("noteCreated", note{ID: "b", Text: "two"})

	// give the stale event a chance to arrive on a live subscription
	seen := make(chan struct{})
	var once sync.Once
	unsub := conn.Subscribe("noteCreated", func(data json.RawMessage) {
		once.Do(func() { close(seen) })
	})
	defer unsub()
	ls.hub.Emit("noteCreated", note{ID: "c", Text: "three"})
	select {
	case <-seen:
	case <-time.After(2 * time.Second):
		t.Fatal("probe event never arrived")
	}

	assert.Equal(t, 1, watch.Len())
}

func TestListMapsEmptyCollection(t *testing.T) {
	ls := newLiveServer(t)
	client := NewClient(ls.srv.URL + "/api")

	notes, err := List[note](context.Background(), client, "/notes")
	require.NoError(t, err)
	assert.Empty(t, notes)

	ls.setNotes([]note{{ID: "a", Text: "one"}})
	notes, err = List[note](context.Background(), client, "/notes")
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}
