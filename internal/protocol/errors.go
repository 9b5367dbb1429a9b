package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001
	ErrCodeRateLimit  = 1002 // 速率限制

	ErrCodeRoomNotFound   = 2001
	ErrCodePlayerNotFound = 2002
	ErrCodeNotHost        = 2003 // 仅房主可操作

	ErrCodeInvalidAmount     = 3001
	ErrCodeInsufficientChips = 3002
)

// ErrorMessages 错误码对应的消息
//
// 面向客户端的文案统一用英文，房间日志同理
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "Unknown error",
	ErrCodeInvalidMsg:        "Invalid message format",
	ErrCodeRateLimit:         "Too many requests",
	ErrCodeRoomNotFound:      "Room not found",
	ErrCodePlayerNotFound:    "Player not found",
	ErrCodeNotHost:           "Only the host can do that",
	ErrCodeInvalidAmount:     "Bet amount must be a positive number",
	ErrCodeInsufficientChips: "Not enough chips",
}
