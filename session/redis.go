// File: session/redis.go
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/FADHEEL1234/Online-Medical/config"
	"github.com/FADHEEL1234/Online-Medical/models"
)

const sessionPrefix = "session:"

// Field names match the flat string layout the original client kept in
// browser storage. The role flags stay textual ("true"/"false") on the wire
// for compatibility; the Store boundary converts them to real booleans.
const (
	fieldToken        = "token"
	fieldRefreshToken = "refresh_token"
	fieldUsername     = "username"
	fieldIsStaff      = "is_staff"
	fieldIsSuperuser  = "is_superuser"
)

// RedisStore keeps each session as a TTL'd Redis hash, so sessions survive
// process restarts.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to the configured Redis instance for session
// storage.
func NewRedisClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (sessions): %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (models.Session, error) {
	vals, err := s.client.HGetAll(ctx, sessionPrefix+sid).Result()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if len(vals) == 0 {
		return models.Anonymous(), nil
	}
	return models.Session{
		AccessToken:  vals[fieldToken],
		RefreshToken: vals[fieldRefreshToken],
		Username:     vals[fieldUsername],
		IsStaff:      vals[fieldIsStaff] == "true",
		IsSuperuser:  vals[fieldIsSuperuser] == "true",
	}, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, sess models.Session) error {
	key := sessionPrefix + sid
	fields := map[string]interface{}{
		fieldToken:        sess.AccessToken,
		fieldRefreshToken: sess.RefreshToken,
		fieldUsername:     sess.Username,
		fieldIsStaff:      strconv.FormatBool(sess.IsStaff),
		fieldIsSuperuser:  strconv.FormatBool(sess.IsSuperuser),
	}
	// Delete + rewrite in one transaction so the snapshot is replaced as a
	// batch, never merged with stale fields.
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionPrefix+sid).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
