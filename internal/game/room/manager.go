package room

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/palemoky/poker-chips/internal/apperrors"
	"github.com/palemoky/poker-chips/internal/server/storage"
	"github.com/palemoky/poker-chips/internal/types"
)

// RoomManager 房间注册表
//
// 注册表锁只保护 rooms 映射，房间内部状态由各房间自己的锁保护
type RoomManager struct {
	store        *storage.RedisStore
	defaultChips int64
	roomTimeout  time.Duration
	rooms        map[string]*Room
	mu           sync.RWMutex
}

// NewRoomManager 创建房间注册表
func NewRoomManager(store *storage.RedisStore, defaultChips int64, roomTimeout time.Duration) *RoomManager {
	rm := &RoomManager{
		store:        store,
		defaultChips: defaultChips,
		roomTimeout:  roomTimeout,
		rooms:        make(map[string]*Room),
	}

	// 启动空房间清理协程
	go rm.cleanupLoop()

	return rm
}

// CreateRoom 创建房间
//
// 同 ID 的旧房间直接覆盖（幂等）；initialChips 非正数时回退到默认值。
// 创建者成为房主，但要等 join-room 才成为玩家和订阅者
func (rm *RoomManager) CreateRoom(client types.ClientInterface, roomID string, initialChips int64) *Room {
	id := strings.TrimSpace(roomID)

	if initialChips <= 0 {
		initialChips = rm.defaultChips
	}

	r := newRoom(id, initialChips)
	r.HostID = client.GetID()

	rm.mu.Lock()
	rm.rooms[id] = r
	rm.mu.Unlock()

	rm.saveAsync(r)

	log.Printf("🏠 房间 %s 已创建，初始筹码 %d，房主 %s", id, initialChips, client.GetID())

	return r
}

// JoinRoom 加入房间（同名即重连）
func (rm *RoomManager) JoinRoom(client types.ClientInterface, roomID, playerName string) (*Room, error) {
	r := rm.GetRoom(roomID)
	if r == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	rejoined := r.Join(client, playerName)

	client.SetRoom(r.ID)
	r.Subscribe(client)
	r.BroadcastSnapshot()
	rm.saveAsync(r)

	if rejoined {
		log.Printf("📶 玩家 %s 重连到房间 %s（连接 %s）", strings.TrimSpace(playerName), r.ID, client.GetID())
	} else {
		log.Printf("👤 玩家 %s 加入房间 %s", strings.TrimSpace(playerName), r.ID)
	}

	return r, nil
}

// PlaceBet 下注
func (rm *RoomManager) PlaceBet(client types.ClientInterface, roomID string, amount int64) error {
	r := rm.GetRoom(roomID)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	if err := r.PlaceBet(client.GetID(), amount); err != nil {
		return err
	}

	r.BroadcastSnapshot()
	rm.saveAsync(r)
	return nil
}

// WinPot 奖池判定（仅房主）
func (rm *RoomManager) WinPot(client types.ClientInterface, roomID, winnerID string) error {
	r := rm.GetRoom(roomID)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	if err := r.WinPot(client.GetID(), winnerID); err != nil {
		return err
	}

	r.BroadcastSnapshot()
	rm.saveAsync(r)
	return nil
}

// ResetGame 重置游戏（仅房主）
func (rm *RoomManager) ResetGame(client types.ClientInterface, roomID string) error {
	r := rm.GetRoom(roomID)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	if err := r.Reset(client.GetID()); err != nil {
		return err
	}

	r.BroadcastSnapshot()
	rm.saveAsync(r)
	return nil
}

// GetRoom 按 ID 查找房间（ID 先去空格）
func (rm *RoomManager) GetRoom(roomID string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[strings.TrimSpace(roomID)]
}

// GetRoomCount 当前房间数
func (rm *RoomManager) GetRoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// HandleDisconnect 处理连接断开
//
// 宽松模式：不动房间状态，只取消该连接的订阅。玩家和房主绑定留在原地，
// 等同名的 join-room 来换绑。无人房间交给清理协程按超时回收
func (rm *RoomManager) HandleDisconnect(client types.ClientInterface) {
	roomID := client.GetRoom()
	if roomID == "" {
		return
	}

	if r := rm.GetRoom(roomID); r != nil {
		r.Unsubscribe(client.GetID())
	}
}

// saveAsync 异步写入 Redis 快照，失败只记日志
func (rm *RoomManager) saveAsync(r *Room) {
	if rm.store == nil {
		return
	}
	data := r.ToRoomData()
	go func() {
		if err := rm.store.SaveRoom(context.Background(), data.ID, data); err != nil {
			log.Printf("保存房间 %s 到 Redis 失败: %v", data.ID, err)
		}
	}()
}

// deleteAsync 异步删除 Redis 快照
func (rm *RoomManager) deleteAsync(roomID string) {
	if rm.store == nil {
		return
	}
	go func() {
		if err := rm.store.DeleteRoom(context.Background(), roomID); err != nil {
			log.Printf("从 Redis 删除房间 %s 失败: %v", roomID, err)
		}
	}()
}

// RestoreRooms 启动时从 Redis 恢复房间
//
// 恢复出来的连接 ID 和房主绑定都是过期的，靠 join-room 的换绑和
// 房主接管路径重新变成活的
func (rm *RoomManager) RestoreRooms(ctx context.Context) error {
	if rm.store == nil {
		return nil
	}

	ids, err := rm.store.GetAllRoomIDs(ctx)
	if err != nil {
		return err
	}

	restored := 0
	for _, id := range ids {
		data, err := rm.store.LoadRoom(ctx, id)
		if err != nil {
			log.Printf("从 Redis 加载房间 %s 失败: %v", id, err)
			continue
		}
		if data == nil {
			continue
		}

		rm.mu.Lock()
		rm.rooms[data.ID] = fromRoomData(data)
		rm.mu.Unlock()
		restored++
	}

	if restored > 0 {
		log.Printf("♻️  从 Redis 恢复了 %d 个房间", restored)
	}

	return nil
}

// cleanupLoop 定期清理无人房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.cleanup()
	}
}

// cleanup 回收超时且没有任何存活订阅的房间
func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	for id, r := range rm.rooms {
		if r.IdleFor(rm.roomTimeout) {
			delete(rm.rooms, id)
			rm.deleteAsync(id)
			log.Printf("🧹 房间 %s 长时间无人，已回收", id)
		}
	}
}
