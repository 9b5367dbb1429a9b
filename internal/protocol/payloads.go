package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ChipAmount 筹码数值
//
// 浏览器端来的 initialChips/amount 可能是数字也可能是数字字符串，
// 统一在解码时收紧成 int64，非法输入直接报解码错误而不是带着 NaN 继续算
type ChipAmount int64

// UnmarshalJSON 接受 JSON 数字或数字字符串
func (a *ChipAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	if s == "" || s == "null" {
		return fmt.Errorf("chip amount is empty")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		*a = ChipAmount(n)
		return nil
	}

	// JS 端的整数经过运算后可能以 500.0 的形式出现
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != float64(int64(f)) {
		return fmt.Errorf("invalid chip amount: %q", s)
	}
	*a = ChipAmount(int64(f))
	return nil
}

// Int64 返回原始数值
func (a ChipAmount) Int64() int64 { return int64(a) }

// --- 客户端请求 Payloads ---

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	RoomID       string     `json:"roomId"`
	InitialChips ChipAmount `json:"initialChips"` // 非正数时回退到默认值
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// PlaceBetPayload 下注请求
type PlaceBetPayload struct {
	RoomID string     `json:"roomId"`
	Amount ChipAmount `json:"amount"`
}

// WinPotPayload 奖池判定请求
type WinPotPayload struct {
	RoomID   string `json:"roomId"`
	WinnerID string `json:"winnerId"` // 赢家的连接 ID
}

// ResetGamePayload 重置游戏请求
type ResetGamePayload struct {
	RoomID string `json:"roomId"`
}

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
//
// socket.io 会隐式下发 socket.id，裸 WebSocket 需要显式告知，
// 否则客户端无法在快照里认出"自己"
type ConnectedPayload struct {
	ConnectionID string `json:"connectionId"`
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	Room RoomSnapshot `json:"room"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"clientTimestamp"`
	ServerTimestamp int64 `json:"serverTimestamp"` // 服务器时间戳（毫秒）
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RoomSnapshot 房间完整快照（room-update 的消息体）
//
// 字段名与原服务的 Room 对象保持一致
type RoomSnapshot struct {
	ID           string       `json:"id"`
	Players      []PlayerInfo `json:"players"` // 按加入顺序
	InitialChips int64        `json:"initialChips"`
	Pot          int64        `json:"pot"`
	Logs         []string     `json:"logs"` // 最新的在最前
	HostID       string       `json:"hostId,omitempty"`
}

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID    string `json:"id"` // 当前连接 ID，重连后会变
	Name  string `json:"name"`
	Chips int64  `json:"chips"`
	Bet   int64  `json:"bet"`
}
