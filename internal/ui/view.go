package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logTailSize = 5

// View renders the model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.phase {
	case PhaseConnecting:
		content = m.connectingView()
	case PhaseSetup:
		content = m.setupView()
	case PhaseTable:
		content = m.tableView()
	}

	return docStyle.Render(content)
}

func (m *Model) connectingView() string {
	var sb string
	if m.err != "" {
		sb = errorStyle.Render(m.err)
	} else {
		sb = "正在连接服务器..."
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb)
}

func (m *Model) setupView() string {
	var b strings.Builder

	b.WriteString(titleStyle(ChipIcon+" 筹码记账") + "\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}
	b.WriteString(dimStyle.Render("\nTab 切换 · Enter 确认 · Esc 退出"))
	if m.notice != "" {
		b.WriteString("\n\n" + m.notice)
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(b.String()))
}

func (m *Model) tableView() string {
	snap := m.snapshot
	if snap == nil {
		return "正在加载房间..."
	}

	var b strings.Builder

	header := fmt.Sprintf("%s 房间 %s", ChipIcon, snap.ID)
	if m.latency > 0 {
		header += dimStyle.Render(fmt.Sprintf("  %dms", m.latency))
	}
	b.WriteString(titleStyle(header) + "\n\n")

	b.WriteString(potStyle.Render(fmt.Sprintf("奖池: %d", snap.Pot)) + "\n\n")

	var rows strings.Builder
	for i, p := range snap.Players {
		marker := "  "
		if p.ID == snap.HostID {
			marker = HostIcon
		}
		row := fmt.Sprintf("%s %d. %-12s 筹码 %-6d 下注 %d", marker, i+1, p.Name, p.Chips, p.Bet)
		if p.ID == m.client.ConnectionID {
			row = selfStyle.Render(row)
		}
		rows.WriteString(row + "\n")
	}
	b.WriteString(boxStyle.Render(strings.TrimRight(rows.String(), "\n")) + "\n")

	// Logs are newest-first; show the most recent few.
	if len(snap.Logs) > 0 {
		tail := snap.Logs
		if len(tail) > logTailSize {
			tail = tail[:logTailSize]
		}
		b.WriteString("\n" + dimStyle.Render(strings.Join(tail, "\n")) + "\n")
	}

	b.WriteString(promptStyle.Render(m.command.View()))
	if m.isHost() {
		b.WriteString(dimStyle.Render("\n下注金额 · w <座位号> 判胜 · r 重置 · Esc 退出"))
	} else {
		b.WriteString(dimStyle.Render("\n输入下注金额 · Esc 退出"))
	}
	if m.notice != "" {
		b.WriteString("\n" + m.notice)
	}

	return b.String()
}
