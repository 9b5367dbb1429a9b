package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
//
// 事件名沿用线上服务的 kebab-case 命名，浏览器端客户端无需改动
const (
	MsgCreateRoom MessageType = "create-room" // 创建房间
	MsgJoinRoom   MessageType = "join-room"   // 加入房间（同名视为重连）
	MsgPlaceBet   MessageType = "place-bet"   // 下注
	MsgWinPot     MessageType = "win-pot"     // 奖池判给某玩家（仅房主）
	MsgResetGame  MessageType = "reset-game"  // 重置游戏（仅房主）
	MsgPing       MessageType = "ping"        // 心跳 ping
)

// 服务端 → 客户端 消息类型
const (
	MsgConnected   MessageType = "connected"    // 连接成功，下发连接 ID
	MsgRoomCreated MessageType = "room-created" // 房间创建成功（仅发给创建者）
	MsgRoomUpdate  MessageType = "room-update"  // 房间快照广播
	MsgPong        MessageType = "pong"         // 心跳 pong
	MsgError       MessageType = "error"        // 错误消息（仅发给发起者）
)
