package apperrors

import (
	"github.com/palemoky/poker-chips/internal/protocol"
)

// GameError 游戏错误（带协议错误码，便于直接回给客户端）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound      = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: protocol.ErrorMessages[protocol.ErrCodeRoomNotFound]}
	ErrPlayerNotFound    = &GameError{Code: protocol.ErrCodePlayerNotFound, Message: protocol.ErrorMessages[protocol.ErrCodePlayerNotFound]}
	ErrNotHost           = &GameError{Code: protocol.ErrCodeNotHost, Message: protocol.ErrorMessages[protocol.ErrCodeNotHost]}
	ErrInvalidAmount     = &GameError{Code: protocol.ErrCodeInvalidAmount, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidAmount]}
	ErrInsufficientChips = &GameError{Code: protocol.ErrCodeInsufficientChips, Message: protocol.ErrorMessages[protocol.ErrCodeInsufficientChips]}
)
