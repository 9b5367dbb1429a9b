package handler

import (
	"strings"

	"github.com/palemoky/poker-chips/internal/protocol"
	"github.com/palemoky/poker-chips/internal/types"
)

// handleCreateRoom 处理创建房间
//
// initialChips 解析失败（字段缺失、非数字）按无效消息处理；
// 解析成功但非正数由注册表回退到默认值
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil || strings.TrimSpace(payload.RoomID) == "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.roomManager.CreateRoom(client, payload.RoomID, payload.InitialChips.Int64())

	// 此时房间还没有订阅者，只回一条 ack 给创建者
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		Room: r.Snapshot(),
	}))
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil || strings.TrimSpace(payload.RoomID) == "" || strings.TrimSpace(payload.PlayerName) == "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if _, err := h.roomManager.JoinRoom(client, payload.RoomID, payload.PlayerName); err != nil {
		respondError(client, err)
	}
}
