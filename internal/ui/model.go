package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/poker-chips/internal/protocol"
	"github.com/palemoky/poker-chips/internal/transport"
)

// Phase represents the current client phase.
type Phase int

const (
	PhaseConnecting Phase = iota
	PhaseSetup
	PhaseTable
)

// Setup form field indexes.
const (
	fieldRoomID = iota
	fieldPlayerName
	fieldChips
	fieldCount
)

// --- Tea Messages ---

// ServerMessage wraps a protocol message for tea.Msg.
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg indicates successful connection.
type ConnectedMsg struct{}

// ConnectionErrorMsg indicates a connection error.
type ConnectionErrorMsg struct {
	Err error
}

// ClearNoticeMsg clears the transient notice line.
type ClearNoticeMsg struct{}

// Model is the main model for the chip tracker client.
type Model struct {
	client *transport.Client
	phase  Phase
	err    string

	// Setup form
	inputs   []textinput.Model
	focusIdx int

	// Table state
	snapshot *protocol.RoomSnapshot
	command  textinput.Model
	notice   string
	latency  int64

	width  int
	height int
}

// NewModel creates the client model.
func NewModel(serverURL string) *Model {
	inputs := make([]textinput.Model, fieldCount)

	inputs[fieldRoomID] = textinput.New()
	inputs[fieldRoomID].Placeholder = "房间号"
	inputs[fieldRoomID].CharLimit = 20
	inputs[fieldRoomID].Width = 24
	inputs[fieldRoomID].Focus()

	inputs[fieldPlayerName] = textinput.New()
	inputs[fieldPlayerName].Placeholder = "昵称"
	inputs[fieldPlayerName].CharLimit = 20
	inputs[fieldPlayerName].Width = 24

	inputs[fieldChips] = textinput.New()
	inputs[fieldChips].Placeholder = "初始筹码 (留空则加入已有房间)"
	inputs[fieldChips].CharLimit = 10
	inputs[fieldChips].Width = 24

	command := textinput.New()
	command.Placeholder = "下注金额 / w <座位号> 判胜 / r 重置"
	command.CharLimit = 20
	command.Width = 40

	return &Model{
		client:  transport.NewClient(serverURL),
		phase:   PhaseConnecting,
		inputs:  inputs,
		command: command,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.connectToServer(),
		textinput.Blink,
	)
}

func (m *Model) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *Model) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

// Client returns the underlying connection, exposed for tests.
func (m *Model) Client() *transport.Client { return m.client }

// Phase returns the current phase.
func (m *Model) Phase() Phase { return m.phase }

// Snapshot returns the latest room state, nil before the first update.
func (m *Model) Snapshot() *protocol.RoomSnapshot { return m.snapshot }

// isHost reports whether this connection holds the host seat.
func (m *Model) isHost() bool {
	return m.snapshot != nil && m.snapshot.HostID == m.client.ConnectionID
}
