package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a token resolves to nothing, either
// because it never existed or because it expired.
var ErrNoSession = errors.New("session not found")

// Session is the request-scoped identity established at login.
type Session struct {
	Token    string
	UserID   string
	Username string
	Role     string
}

type Store interface {
	Create(ctx context.Context, userID, username, role string) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, token string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis and verifies the connection before
// returning the store.
func NewRedisStore(addr, password string, ttl time.Duration) (Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{client: rdb, ttl: ttl}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *redisStore) Create(ctx context.Context, userID, username, role string) (*Session, error) {
	sess := &Session{
		Token:    uuid.New().String(),
		UserID:   userID,
		Username: username,
		Role:     role,
	}

	fields := map[string]any{
		"user_id":  sess.UserID,
		"username": sess.Username,
		"role":     sess.Role,
	}
	key := sessionKey(sess.Token)
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("expire session: %w", err)
	}
	return sess, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNoSession
	}
	return &Session{
		Token:    token,
		UserID:   fields["user_id"],
		Username: fields["username"],
		Role:     fields["role"],
	}, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
