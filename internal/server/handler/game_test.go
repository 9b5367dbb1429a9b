package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/poker-chips/internal/protocol"
	"github.com/palemoky/poker-chips/internal/testutil"
)

// seatPlayers 建一个带房主和两名玩家的房间, 走完整的消息分发路径
func seatPlayers(t *testing.T, h *Handler, chips int64) (host, alice, bob *testutil.SimpleClient) {
	t.Helper()

	host = &testutil.SimpleClient{ID: "host"}
	h.Handle(host, mustMsg(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		RoomID:       "A",
		InitialChips: protocol.ChipAmount(chips),
	}))

	alice = &testutil.SimpleClient{ID: "alice"}
	h.Handle(alice, mustMsg(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{RoomID: "A", PlayerName: "Alice"}))

	bob = &testutil.SimpleClient{ID: "bob"}
	h.Handle(bob, mustMsg(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{RoomID: "A", PlayerName: "Bob"}))

	return host, alice, bob
}

func lastSnapshot(t *testing.T, c *testutil.SimpleClient) protocol.RoomSnapshot {
	t.Helper()
	updates := c.MessagesOfType(protocol.MsgRoomUpdate)
	require.NotEmpty(t, updates)
	snap, err := protocol.ParsePayload[protocol.RoomSnapshot](updates[len(updates)-1])
	require.NoError(t, err)
	return *snap
}

func TestHandler_PlaceBet(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	_, alice, bob := seatPlayers(t, h, 500)

	h.Handle(alice, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: 100}))
	h.Handle(bob, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: 50}))

	snap := lastSnapshot(t, alice)
	assert.Equal(t, int64(150), snap.Pot)
	assert.Equal(t, int64(400), snap.Players[0].Chips)
	assert.Equal(t, int64(100), snap.Players[0].Bet)
	assert.Equal(t, int64(450), snap.Players[1].Chips)
	assert.Equal(t, int64(50), snap.Players[1].Bet)
}

func TestHandler_PlaceBet_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   int64
		wantCode int
	}{
		{name: "zero amount", amount: 0, wantCode: protocol.ErrCodeInvalidAmount},
		{name: "negative amount", amount: -10, wantCode: protocol.ErrCodeInvalidAmount},
		{name: "over stack", amount: 9999, wantCode: protocol.ErrCodeInsufficientChips},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler()
			_, alice, _ := seatPlayers(t, h, 500)
			updatesBefore := len(alice.MessagesOfType(protocol.MsgRoomUpdate))

			h.Handle(alice, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: protocol.ChipAmount(tt.amount)}))

			assert.Equal(t, tt.wantCode, errorCode(t, alice.LastMessage()))
			// 拒绝的下注不触发广播
			assert.Len(t, alice.MessagesOfType(protocol.MsgRoomUpdate), updatesBefore)
		})
	}
}

func TestHandler_PlaceBet_MalformedAmount(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	_, alice, _ := seatPlayers(t, h, 500)

	h.Handle(alice, &protocol.Message{
		Type:    protocol.MsgPlaceBet,
		Payload: json.RawMessage(`{"roomId":"A","amount":"a lot"}`),
	})

	assert.Equal(t, protocol.ErrCodeInvalidMsg, errorCode(t, alice.LastMessage()))
}

func TestHandler_WinPot(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	host, alice, bob := seatPlayers(t, h, 500)

	h.Handle(alice, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: 100}))
	h.Handle(bob, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: 50}))
	h.Handle(host, mustMsg(t, protocol.MsgWinPot, protocol.WinPotPayload{RoomID: "A", WinnerID: "alice"}))

	snap := lastSnapshot(t, bob)
	assert.Equal(t, int64(0), snap.Pot)
	assert.Equal(t, int64(550), snap.Players[0].Chips)
	assert.Equal(t, int64(0), snap.Players[0].Bet)
	assert.Equal(t, int64(450), snap.Players[1].Chips)
	assert.Equal(t, int64(0), snap.Players[1].Bet)
}

func TestHandler_WinPot_NotHost(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	_, alice, bob := seatPlayers(t, h, 500)

	h.Handle(alice, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: 100}))
	updatesBefore := len(bob.MessagesOfType(protocol.MsgRoomUpdate))

	h.Handle(bob, mustMsg(t, protocol.MsgWinPot, protocol.WinPotPayload{RoomID: "A", WinnerID: "bob"}))

	assert.Equal(t, protocol.ErrCodeNotHost, errorCode(t, bob.LastMessage()))
	assert.Len(t, bob.MessagesOfType(protocol.MsgRoomUpdate), updatesBefore)

	snap := lastSnapshot(t, alice)
	assert.Equal(t, int64(100), snap.Pot)
}

func TestHandler_ResetGame(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	host, alice, _ := seatPlayers(t, h, 500)

	h.Handle(alice, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: 100}))
	h.Handle(host, mustMsg(t, protocol.MsgResetGame, protocol.ResetGamePayload{RoomID: "A"}))

	snap := lastSnapshot(t, alice)
	assert.Equal(t, int64(0), snap.Pot)
	assert.Equal(t, int64(500), snap.Players[0].Chips)
	assert.Equal(t, int64(0), snap.Players[0].Bet)
}

func TestHandler_ResetGame_BareStringPayload(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	host, alice, _ := seatPlayers(t, h, 500)

	h.Handle(alice, mustMsg(t, protocol.MsgPlaceBet, protocol.PlaceBetPayload{RoomID: "A", Amount: 100}))
	// 旧版客户端把房间 ID 作为裸字符串发送
	h.Handle(host, &protocol.Message{Type: protocol.MsgResetGame, Payload: json.RawMessage(`"A"`)})

	snap := lastSnapshot(t, alice)
	assert.Equal(t, int64(0), snap.Pot)
}

func TestHandler_ResetGame_NotHost(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	_, alice, _ := seatPlayers(t, h, 500)

	h.Handle(alice, mustMsg(t, protocol.MsgResetGame, protocol.ResetGamePayload{RoomID: "A"}))

	assert.Equal(t, protocol.ErrCodeNotHost, errorCode(t, alice.LastMessage()))
}

func TestHandler_Ping(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, mustMsg(t, protocol.MsgPing, protocol.PingPayload{Timestamp: 12345}))

	require.Len(t, c.Messages, 1)
	require.Equal(t, protocol.MsgPong, c.Messages[0].Type)
	pong, err := protocol.ParsePayload[protocol.PongPayload](c.Messages[0])
	require.NoError(t, err)
	assert.Equal(t, int64(12345), pong.ClientTimestamp)
	assert.NotZero(t, pong.ServerTimestamp)
}
