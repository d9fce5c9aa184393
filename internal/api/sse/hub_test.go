package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/minesweeper-go/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "game-updated",
			data:      `{"status":"ongoing"}`,
			expected:  "event: game-updated\ndata: {\"status\":\"ongoing\"}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "game-updated",
			data:      "{\n  \"epoch\": 1\n}",
			expected:  "event: game-updated\ndata: {\ndata:   \"epoch\": 1\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2\r\n",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(formatSSEMessage(tt.eventName, tt.data)))
		})
	}
}

func receive(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("client did not receive message")
		return ""
	}
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := NewHub("GAME1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "client-1")
	require.True(t, hub.Register(client))
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastEvent(EventGameUpdated, "data")

	assert.Equal(t, "event: game-updated\ndata: data\n\n", receive(t, client))
}

func TestHubBroadcastToMultipleClients(t *testing.T) {
	hub := NewHub("GAME1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	clients := []*Client{
		NewClient(hub, "client-1"),
		NewClient(hub, "client-2"),
		NewClient(hub, "client-3"),
	}
	for _, c := range clients {
		require.True(t, hub.Register(c))
	}

	hub.BroadcastEvent(EventGameReset, "x")

	for _, c := range clients {
		assert.Equal(t, "event: game-reset\ndata: x\n\n", receive(t, c))
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub("GAME1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "client-1")
	require.True(t, hub.Register(client))

	hub.Unregister(client)

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.send
	assert.False(t, open, "unregistering closes the send channel")
}

func TestHubCloseDeliversQueuedMessages(t *testing.T) {
	hub := NewHub("GAME1", testutil.NopLogger())
	go hub.Run()

	client := NewClient(hub, "client-1")
	require.True(t, hub.Register(client))

	hub.BroadcastEvent(EventGameDeleted, "bye")
	hub.Close()

	assert.Equal(t, "event: game-deleted\ndata: bye\n\n", receive(t, client))
	_, open := <-client.send
	assert.False(t, open)
}

func TestHubRegisterAfterClose(t *testing.T) {
	hub := NewHub("GAME1", testutil.NopLogger())
	go hub.Run()
	hub.Close()
	hub.Close()

	assert.False(t, hub.Register(NewClient(hub, "late")))
}

func TestHubManagerGetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub1 := manager.GetOrCreateHub("GAME1")
	hub2 := manager.GetOrCreateHub("GAME1")
	hub3 := manager.GetOrCreateHub("GAME2")

	assert.Same(t, hub1, hub2)
	assert.NotSame(t, hub1, hub3)
	assert.Equal(t, 2, manager.HubCount())
	assert.Same(t, hub1, manager.GetHub("GAME1"))
	assert.Nil(t, manager.GetHub("GAME3"))

	manager.RemoveHub("GAME1")
	manager.RemoveHub("GAME2")
	manager.RemoveHub("GAME3")
	assert.Equal(t, 0, manager.HubCount())
}

func TestHubManagerSubscribe(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	client, ok := manager.Subscribe("GAME1", "client-1")
	require.True(t, ok)

	hub := manager.GetHub("GAME1")
	require.NotNil(t, hub)
	assert.Same(t, hub, client.hub)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	manager.RemoveHub("GAME1")
}

func TestHubManagerSubscribeReplacesClosedHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	// Closed by a cleanup that has not yet dropped it from the map
	stale := manager.GetOrCreateHub("GAME1")
	stale.Close()

	client, ok := manager.Subscribe("GAME1", "client-1")
	require.True(t, ok)

	assert.NotSame(t, stale, client.hub)
	assert.Same(t, client.hub, manager.GetHub("GAME1"))
	assert.Equal(t, 1, manager.HubCount())
	assert.Eventually(t, func() bool { return client.hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	manager.RemoveHub("GAME1")
}

func TestHubManagerCleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	manager.GetOrCreateHub("EMPTY")
	active := manager.GetOrCreateHub("ACTIVE")
	require.True(t, active.Register(NewClient(active, "client-1")))
	require.Eventually(t, func() bool { return active.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	manager.CleanupEmptyHubs()

	assert.Nil(t, manager.GetHub("EMPTY"))
	assert.NotNil(t, manager.GetHub("ACTIVE"))

	manager.RemoveHub("ACTIVE")
}

func TestHubManagerRunCleanup(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	manager.GetOrCreateHub("EMPTY")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		manager.RunCleanup(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return manager.HubCount() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunCleanup did not stop after cancel")
	}
}
