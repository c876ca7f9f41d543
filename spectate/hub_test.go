package spectate

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"term-snake/game"
	"term-snake/game/types"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.Options{Food: []types.Cell{}})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSnapshotBeforeFirstFrame(t *testing.T) {
	srv := httptest.NewServer(NewHub("s1").Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestSnapshotServesLatestFrame(t *testing.T) {
	hub := NewHub("s1")
	srv := httptest.NewServer(hub.Router())
	defer srv.Close()

	g := newGame(t)
	g.Tick()
	if err := hub.Present(g.Snapshot()); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var f Frame
	if err := json.Unmarshal(body, &f); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	if f.Session != "s1" || f.Board.Tick != 1 || len(f.Rows) != 10 {
		t.Errorf("frame = %+v", f)
	}
	if f.Rows[5][3] != '@' {
		t.Errorf("row 5 = %q, want head at column 3", f.Rows[5])
	}
	if !strings.Contains(string(body), `"heading":"right"`) {
		t.Errorf("heading not encoded by name: %s", body)
	}
}

func TestWebsocketStreamsFrames(t *testing.T) {
	hub := NewHub("s2")
	srv := httptest.NewServer(hub.Router())
	defer srv.Close()

	g := newGame(t)
	if err := hub.Present(g.Snapshot()); err != nil {
		t.Fatal(err)
	}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	read := func() Frame {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read: %v", err)
		}
		return f
	}

	// The latest frame is sent on connect.
	if f := read(); f.Board.Tick != 0 {
		t.Errorf("first frame tick = %d, want 0", f.Board.Tick)
	}

	g.Tick()
	if err := hub.Present(g.Snapshot()); err != nil {
		t.Fatal(err)
	}
	if f := read(); f.Board.Tick != 1 || f.Session != "s2" {
		t.Errorf("second frame = %+v", f)
	}
}

func TestWatcherLeaves(t *testing.T) {
	hub := NewHub("s3")
	srv := httptest.NewServer(hub.Router())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.Watchers() != 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Watchers() != 1 {
		t.Fatalf("watchers = %d, want 1", hub.Watchers())
	}

	conn.Close()
	for hub.Watchers() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Watchers() != 0 {
		t.Errorf("watchers = %d after close, want 0", hub.Watchers())
	}
}
