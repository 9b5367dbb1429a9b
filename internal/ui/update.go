package ui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/poker-chips/internal/protocol"
)

// Update handles tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ConnectedMsg:
		m.phase = PhaseSetup
		m.err = ""
		m.client.StartHeartbeat()
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		m.err = fmt.Sprintf("无法连接到服务器: %v\n\n按 ESC 退出", msg.Err)
		m.phase = PhaseConnecting

	case ClearNoticeMsg:
		m.notice = ""

	case ServerMessage:
		if cmd := m.handleServerMessage(msg.Msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}

	case tea.KeyMsg:
		handled, keyCmd := m.handleKeyPress(msg)
		if keyCmd != nil {
			cmds = append(cmds, keyCmd)
		}
		if handled {
			return m, tea.Batch(cmds...)
		}
	}

	cmds = append(cmds, m.updateInputs(msg))
	return m, tea.Batch(cmds...)
}

// handleServerMessage applies a server event to the model.
func (m *Model) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	case protocol.MsgRoomUpdate:
		var snap protocol.RoomSnapshot
		if err := json.Unmarshal(msg.Payload, &snap); err != nil {
			return nil
		}
		m.snapshot = &snap
		if m.phase != PhaseTable {
			m.phase = PhaseTable
			m.command.Focus()
		}

	case protocol.MsgRoomCreated:
		// 创建成功后立即加入自己的房间
		var payload protocol.RoomCreatedPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			_ = m.client.JoinRoom(payload.Room.ID, m.inputs[fieldPlayerName].Value())
		}

	case protocol.MsgPong:
		m.latency = m.client.GetLatency()

	case protocol.MsgError:
		var payload protocol.ErrorPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil
		}
		return m.showNotice(errorStyle.Render("⚠ " + payload.Message))
	}
	return nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.client.Close()
		return true, tea.Quit
	}

	switch m.phase {
	case PhaseSetup:
		return m.handleSetupKey(msg)
	case PhaseTable:
		if msg.Type == tea.KeyEnter {
			return true, m.submitCommand()
		}
	}
	return false, nil
}

func (m *Model) handleSetupKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.focusField(m.focusIdx + 1)
		return true, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusField(m.focusIdx - 1)
		return true, nil
	case tea.KeyEnter:
		if m.focusIdx < fieldCount-1 {
			m.focusField(m.focusIdx + 1)
			return true, nil
		}
		return true, m.submitSetup()
	}
	return false, nil
}

func (m *Model) focusField(idx int) {
	if idx < 0 {
		idx = fieldCount - 1
	}
	if idx >= fieldCount {
		idx = 0
	}
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	m.inputs[m.focusIdx].Focus()
}

// submitSetup joins the room, creating it first when initial chips are given.
func (m *Model) submitSetup() tea.Cmd {
	roomID := strings.TrimSpace(m.inputs[fieldRoomID].Value())
	name := strings.TrimSpace(m.inputs[fieldPlayerName].Value())
	chipsRaw := strings.TrimSpace(m.inputs[fieldChips].Value())

	if roomID == "" || name == "" {
		return m.showNotice(errorStyle.Render("房间号和昵称不能为空"))
	}

	if chipsRaw != "" {
		chips, err := strconv.ParseInt(chipsRaw, 10, 64)
		if err != nil || chips <= 0 {
			return m.showNotice(errorStyle.Render("初始筹码必须是正整数"))
		}
		// 加入动作由 room-created 回执触发
		_ = m.client.CreateRoom(roomID, chips)
		return nil
	}

	_ = m.client.JoinRoom(roomID, name)
	return nil
}

// submitCommand parses the table command box: a number bets, "w <seat>"
// awards the pot, "r" resets the table.
func (m *Model) submitCommand() tea.Cmd {
	raw := strings.TrimSpace(m.command.Value())
	m.command.Reset()
	if raw == "" {
		return nil
	}

	fields := strings.Fields(strings.ToLower(raw))
	switch fields[0] {
	case "w":
		if !m.isHost() {
			return m.showNotice(errorStyle.Render("只有房主可以判定赢家"))
		}
		if len(fields) != 2 {
			return m.showNotice(errorStyle.Render("用法: w <座位号>"))
		}
		seat, err := strconv.Atoi(fields[1])
		if err != nil || m.snapshot == nil || seat < 1 || seat > len(m.snapshot.Players) {
			return m.showNotice(errorStyle.Render("无效的座位号"))
		}
		_ = m.client.WinPot(m.snapshot.Players[seat-1].ID)

	case "r":
		if !m.isHost() {
			return m.showNotice(errorStyle.Render("只有房主可以重置游戏"))
		}
		_ = m.client.ResetGame()

	default:
		amount, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return m.showNotice(errorStyle.Render("请输入下注金额或命令"))
		}
		_ = m.client.PlaceBet(amount)
	}
	return nil
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.phase {
	case PhaseSetup:
		for i := range m.inputs {
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	case PhaseTable:
		m.command, cmd = m.command.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
