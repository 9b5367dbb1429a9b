package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/palemoky/poker-chips/internal/protocol"
	"github.com/palemoky/poker-chips/internal/types"
)

// Player 房间中的玩家
//
// ID 是玩家当前连接的 ID，重连后由 join-room 按名字换绑；
// Name 在房间内唯一，是重连的匹配键
type Player struct {
	ID    string
	Name  string
	Chips int64
	Bet   int64 // 本轮已投入奖池的筹码
}

// Room 游戏房间
type Room struct {
	ID           string
	Players      []*Player // 按加入顺序
	InitialChips int64
	Pot          int64
	Logs         []string // 最新的在最前，不做淘汰
	HostID       string   // 房主的连接 ID，可能为空或过期
	CreatedAt    time.Time

	lastActive  time.Time
	subscribers map[string]types.ClientInterface

	mu sync.RWMutex
}

// newRoom 创建一个空房间
func newRoom(id string, initialChips int64) *Room {
	now := time.Now()
	return &Room{
		ID:           id,
		Players:      make([]*Player, 0, 8),
		InitialChips: initialChips,
		Logs:         []string{fmt.Sprintf("Room created with %d initial chips", initialChips)},
		CreatedAt:    now,
		lastActive:   now,
		subscribers:  make(map[string]types.ClientInterface),
	}
}

// findPlayerByName 按名字查找玩家（调用方持锁）
func (r *Room) findPlayerByName(name string) *Player {
	for _, p := range r.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// findPlayerByID 按连接 ID 查找玩家（调用方持锁）
func (r *Room) findPlayerByID(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// appendLog 追加一条日志到最前（调用方持锁）
func (r *Room) appendLog(format string, args ...any) {
	r.Logs = append([]string{fmt.Sprintf(format, args...)}, r.Logs...)
}

// touch 更新活跃时间（调用方持锁）
func (r *Room) touch() {
	r.lastActive = time.Now()
}

// Subscribe 订阅房间广播
func (r *Room) Subscribe(client types.ClientInterface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers[client.GetID()] = client
}

// Unsubscribe 取消订阅
func (r *Room) Unsubscribe(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subscribers, connID)
}

// SubscriberCount 当前存活的订阅连接数
func (r *Room) SubscriberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscribers)
}

// IdleFor 房间是否已经无人订阅且闲置超过 d
func (r *Room) IdleFor(d time.Duration) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscribers) == 0 && time.Since(r.lastActive) > d
}

// Broadcast 将消息发给房间内所有订阅连接
//
// 发送走每个客户端的缓冲通道，不会阻塞调用方
func (r *Room) Broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, client := range r.subscribers {
		client.SendMessage(msg)
	}
}

// BroadcastSnapshot 广播当前房间快照
func (r *Room) BroadcastSnapshot() {
	r.Broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, r.Snapshot()))
}
