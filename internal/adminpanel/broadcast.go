package adminpanel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// BroadcastChannel is the redis pub/sub channel platform clients subscribe to
// for announcements.
const BroadcastChannel = "skillswap:broadcasts"

// Broadcast is an announcement sent to every user.
type Broadcast struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"admin_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Broadcaster persists announcements and fans them out over redis pub/sub.
type Broadcaster struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

func NewBroadcaster(db *pgxpool.Pool, rdb *redis.Client) *Broadcaster {
	return &Broadcaster{db: db, rdb: rdb}
}

// Send records the broadcast and publishes it. The record is the source of
// truth; a publish failure is returned but the row stays.
func (b *Broadcaster) Send(ctx context.Context, adminID, message string) (Broadcast, error) {
	bc := Broadcast{
		ID:        uuid.New().String(),
		AdminID:   adminID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	const q = `insert into broadcasts (id, admin_id, message, created_at) values ($1, $2, $3, $4)`
	if _, err := b.db.Exec(ctx, q, bc.ID, bc.AdminID, bc.Message, bc.CreatedAt); err != nil {
		return Broadcast{}, fmt.Errorf("store broadcast: %w", err)
	}

	payload, err := json.Marshal(bc)
	if err != nil {
		return Broadcast{}, fmt.Errorf("encode broadcast: %w", err)
	}
	if err := b.rdb.Publish(ctx, BroadcastChannel, payload).Err(); err != nil {
		return bc, fmt.Errorf("publish broadcast: %w", err)
	}
	return bc, nil
}
