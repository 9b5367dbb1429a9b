package room

import (
	"time"

	"github.com/palemoky/poker-chips/internal/protocol"
	"github.com/palemoky/poker-chips/internal/server/storage"
	"github.com/palemoky/poker-chips/internal/types"
)

// Snapshot 生成房间完整快照（room-update 的消息体）
func (r *Room) Snapshot() protocol.RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := protocol.RoomSnapshot{
		ID:           r.ID,
		Players:      make([]protocol.PlayerInfo, 0, len(r.Players)),
		InitialChips: r.InitialChips,
		Pot:          r.Pot,
		Logs:         append([]string(nil), r.Logs...),
		HostID:       r.HostID,
	}

	for _, p := range r.Players {
		snap.Players = append(snap.Players, protocol.PlayerInfo{
			ID:    p.ID,
			Name:  p.Name,
			Chips: p.Chips,
			Bet:   p.Bet,
		})
	}

	return snap
}

// ToRoomData 将 Room 转换为可序列化的 RoomData
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := &storage.RoomData{
		ID:           r.ID,
		Players:      make([]storage.PlayerData, 0, len(r.Players)),
		InitialChips: r.InitialChips,
		Pot:          r.Pot,
		Logs:         append([]string(nil), r.Logs...),
		HostID:       r.HostID,
		CreatedAt:    r.CreatedAt.Unix(),
	}

	for _, p := range r.Players {
		data.Players = append(data.Players, storage.PlayerData{
			ID:    p.ID,
			Name:  p.Name,
			Chips: p.Chips,
			Bet:   p.Bet,
		})
	}

	return data
}

// fromRoomData 从 Redis 快照重建房间
//
// 重建出来的房间没有任何订阅者，连接 ID 全部过期
func fromRoomData(data *storage.RoomData) *Room {
	r := &Room{
		ID:           data.ID,
		Players:      make([]*Player, 0, len(data.Players)),
		InitialChips: data.InitialChips,
		Pot:          data.Pot,
		Logs:         data.Logs,
		HostID:       data.HostID,
		CreatedAt:    time.Unix(data.CreatedAt, 0),
		lastActive:   time.Now(),
		subscribers:  make(map[string]types.ClientInterface),
	}

	for _, p := range data.Players {
		r.Players = append(r.Players, &Player{
			ID:    p.ID,
			Name:  p.Name,
			Chips: p.Chips,
			Bet:   p.Bet,
		})
	}

	return r
}
