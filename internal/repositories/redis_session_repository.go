package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecogauge/back/internal/models"
)

// sessionKeyPrefix はRedis上のセッションハッシュのキープレフィックス
const sessionKeyPrefix = "session:"

type redisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository はRedisバックエンドのセッションリポジトリを生成する。
// 接続確認に失敗した場合はエラーを返す（呼び出し側でメモリベースにフォールバック）
func NewRedisSessionRepository(addr string) (SessionRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &redisSessionRepository{client: client}, nil
}

func (r *redisSessionRepository) Create(ctx context.Context, session *models.Session) error {
	key := sessionKeyPrefix + session.ID

	fields := map[string]interface{}{
		"id":         session.ID,
		"username":   session.Username,
		"created_at": session.CreatedAt.Unix(),
		"expires_at": session.ExpiresAt.Unix(),
	}

	// TTLは作成時に一度だけ設定し、アクセスで更新しない（スライド無し）
	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.ExpireAt(ctx, key, session.ExpiresAt)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisSessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	key := sessionKeyPrefix + token

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("session not found")
	}

	createdAt, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at in session %s: %w", token, err)
	}
	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid expires_at in session %s: %w", token, err)
	}

	return &models.Session{
		ID:        fields["id"],
		Username:  fields["username"],
		CreatedAt: time.Unix(createdAt, 0),
		ExpiresAt: time.Unix(expiresAt, 0),
	}, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKeyPrefix+token).Err()
}

func (r *redisSessionRepository) DeleteExpired(ctx context.Context) error {
	// Redis側のTTLで自動削除されるため何もしない
	return nil
}
