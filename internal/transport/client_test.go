package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/poker-chips/internal/protocol"
)

var upgrader = websocket.Upgrader{}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		// simple echo
		_ = c.WriteMessage(mt, message)
	}
}

func TestClient_ConnectAndSend(t *testing.T) {
	// Start a mock WS server that echoes messages
	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer s.Close()

	// Convert http URL to ws URL
	wsURL := "ws" + strings.TrimPrefix(s.URL, "http")

	client := NewClient(wsURL)
	assert.NotNil(t, client)

	// Connect
	err := client.Connect()
	assert.NoError(t, err)
	defer client.Close()

	// Wait for connection to establish
	time.Sleep(100 * time.Millisecond)
	assert.True(t, client.IsConnected())

	// Send a bet; the echo server bounces the encoded message back
	client.RoomID = "A"
	err = client.PlaceBet(100)
	assert.NoError(t, err)

	receivedMsg, err := client.ReceiveWithTimeout(1 * time.Second)
	require.NoError(t, err)
	require.NotNil(t, receivedMsg)
	assert.Equal(t, protocol.MsgPlaceBet, receivedMsg.Type)

	payload, err := protocol.ParsePayload[protocol.PlaceBetPayload](receivedMsg)
	require.NoError(t, err)
	assert.Equal(t, "A", payload.RoomID)
	assert.Equal(t, int64(100), payload.Amount.Int64())
}

func TestClient_JoinRoomRemembersContext(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer s.Close()

	wsURL := "ws" + strings.TrimPrefix(s.URL, "http")
	client := NewClient(wsURL)
	require.NoError(t, client.Connect())
	defer client.Close()

	require.NoError(t, client.JoinRoom("A", "Alice"))
	assert.Equal(t, "A", client.RoomID)
	assert.Equal(t, "Alice", client.PlayerName)
}

func TestClient_SendOnClosedConnection(t *testing.T) {
	client := NewClient("ws://localhost:0")
	client.Close()

	err := client.Ping()
	assert.Error(t, err)
}
