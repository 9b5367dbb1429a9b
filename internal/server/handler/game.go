package handler

import (
	"github.com/palemoky/poker-chips/internal/protocol"
	"github.com/palemoky/poker-chips/internal/types"
)

// handlePlaceBet 处理下注
func (h *Handler) handlePlaceBet(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlaceBetPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.roomManager.PlaceBet(client, payload.RoomID, payload.Amount.Int64()); err != nil {
		respondError(client, err)
	}
}

// handleWinPot 处理奖池判定（仅房主）
func (h *Handler) handleWinPot(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.WinPotPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.roomManager.WinPot(client, payload.RoomID, payload.WinnerID); err != nil {
		respondError(client, err)
	}
}

// handleResetGame 处理重置游戏（仅房主）
func (h *Handler) handleResetGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParseResetGame(msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.roomManager.ResetGame(client, payload.RoomID); err != nil {
		respondError(client, err)
	}
}
