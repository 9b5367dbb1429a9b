package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/poker-chips/internal/protocol"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel("ws://localhost:0/ws")
	m.width = 80
	m.height = 24
	return m
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	m := NewModel("ws://localhost:0/ws")

	assert.Equal(t, PhaseConnecting, m.Phase())
	assert.Nil(t, m.Snapshot())
	assert.Len(t, m.inputs, fieldCount)
}

func TestModel_RoomUpdateEntersTable(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseSetup

	msg := protocol.MustNewMessage(protocol.MsgRoomUpdate, protocol.RoomSnapshot{
		ID:  "A",
		Pot: 150,
		Players: []protocol.PlayerInfo{
			{ID: "c1", Name: "Alice", Chips: 400, Bet: 100},
			{ID: "c2", Name: "Bob", Chips: 450, Bet: 50},
		},
		HostID: "c1",
	})
	m.handleServerMessage(msg)

	assert.Equal(t, PhaseTable, m.Phase())
	require.NotNil(t, m.Snapshot())
	assert.Equal(t, int64(150), m.Snapshot().Pot)
	assert.Len(t, m.Snapshot().Players, 2)
}

func TestModel_ErrorEventShowsNotice(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	msg := protocol.MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    protocol.ErrCodeInsufficientChips,
		Message: "Insufficient chips",
	})
	cmd := m.handleServerMessage(msg)

	assert.NotNil(t, cmd)
	assert.Contains(t, m.notice, "Insufficient chips")
}

func TestModel_IsHost(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.client.ConnectionID = "c1"
	m.snapshot = &protocol.RoomSnapshot{ID: "A", HostID: "c1"}
	assert.True(t, m.isHost())

	m.snapshot.HostID = "c2"
	assert.False(t, m.isHost())
}

func TestModel_SetupValidation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseSetup

	// Blank form shows an error instead of sending anything
	cmd := m.submitSetup()
	assert.NotNil(t, cmd)
	assert.NotEmpty(t, m.notice)

	m.inputs[fieldRoomID].SetValue("A")
	m.inputs[fieldPlayerName].SetValue("Alice")
	m.inputs[fieldChips].SetValue("abc")
	cmd = m.submitSetup()
	assert.NotNil(t, cmd)
}

func TestModel_CommandGating(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable
	m.client.ConnectionID = "c2"
	m.snapshot = &protocol.RoomSnapshot{
		ID:      "A",
		HostID:  "c1",
		Players: []protocol.PlayerInfo{{ID: "c1", Name: "Alice"}},
	}

	// Non-host win command is rejected locally
	m.command.SetValue("w 1")
	cmd := m.submitCommand()
	assert.NotNil(t, cmd)
	assert.NotEmpty(t, m.notice)

	m.notice = ""
	m.command.SetValue("r")
	cmd = m.submitCommand()
	assert.NotNil(t, cmd)
	assert.NotEmpty(t, m.notice)

	m.notice = ""
	m.command.SetValue("not-a-number")
	cmd = m.submitCommand()
	assert.NotNil(t, cmd)
	assert.NotEmpty(t, m.notice)
}

func TestModel_ViewPhases(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Contains(t, m.View(), "正在连接服务器")

	m.phase = PhaseSetup
	assert.Contains(t, m.View(), "筹码记账")

	m.phase = PhaseTable
	m.snapshot = &protocol.RoomSnapshot{
		ID:     "A",
		Pot:    150,
		HostID: "c1",
		Players: []protocol.PlayerInfo{
			{ID: "c1", Name: "Alice", Chips: 400, Bet: 100},
		},
		Logs: []string{"Alice bet 100", "Alice joined the room"},
	}
	view := m.View()
	assert.Contains(t, view, "房间 A")
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "150")
	assert.Contains(t, view, "Alice bet 100")
}

func TestModel_QuitOnEsc(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseSetup

	handled, cmd := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.NotNil(t, cmd)
}
