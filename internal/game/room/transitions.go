package room

import (
	"strings"

	"github.com/palemoky/poker-chips/internal/apperrors"
	"github.com/palemoky/poker-chips/internal/types"
)

// 状态迁移都在这里：持有房间锁，原地修改，追加一条日志。
// 广播由上层（RoomManager）在迁移成功后统一触发。

// Join 玩家加入或重连
//
// 同名（去空格后精确匹配）视为重连，把该玩家的连接 ID 换绑到当前连接；
// 如果旧连接 ID 正好是房主，房主身份跟着玩家走。
// 房主为空时当前连接接管房主（孤儿房间恢复路径）。
// 返回值表示这次是重连还是新加入。
func (r *Room) Join(client types.ClientInterface, playerName string) (rejoined bool) {
	name := strings.TrimSpace(playerName)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.HostID == "" {
		r.HostID = client.GetID()
	}

	if existing := r.findPlayerByName(name); existing != nil {
		if r.HostID == existing.ID {
			r.HostID = client.GetID()
		}
		existing.ID = client.GetID()
		r.appendLog("%s rejoined the room", name)
		r.touch()
		return true
	}

	r.Players = append(r.Players, &Player{
		ID:    client.GetID(),
		Name:  name,
		Chips: r.InitialChips,
	})
	r.appendLog("%s joined the room", name)
	r.touch()
	return false
}

// PlaceBet 下注
//
// 拒绝时不改任何状态也不记日志
func (r *Room) PlaceBet(connID string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.findPlayerByID(connID)
	if player == nil {
		return apperrors.ErrPlayerNotFound
	}
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if amount > player.Chips {
		return apperrors.ErrInsufficientChips
	}

	player.Chips -= amount
	player.Bet += amount
	r.Pot += amount
	r.appendLog("%s bet %d", player.Name, amount)
	r.touch()
	return nil
}

// WinPot 房主把奖池判给某个玩家
func (r *Room) WinPot(actorID, winnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID != r.HostID {
		return apperrors.ErrNotHost
	}

	winner := r.findPlayerByID(winnerID)
	if winner == nil {
		return apperrors.ErrPlayerNotFound
	}

	winAmount := r.Pot
	winner.Chips += winAmount
	r.Pot = 0
	for _, p := range r.Players {
		p.Bet = 0
	}
	r.appendLog("%s won the pot of %d", winner.Name, winAmount)
	r.touch()
	return nil
}

// Reset 房主重置游戏：清空奖池，所有人回到初始筹码
func (r *Room) Reset(actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID != r.HostID {
		return apperrors.ErrNotHost
	}

	r.Pot = 0
	for _, p := range r.Players {
		p.Chips = r.InitialChips
		p.Bet = 0
	}
	r.appendLog("Game reset by host")
	r.touch()
	return nil
}
