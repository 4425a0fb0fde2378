package otp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps one pending OTP per email address in redis. Codes expire on
// their own via TTL; a successful password reset clears them early.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore connects to redis and verifies connectivity.
func NewStore(address, password string, db int, ttl time.Duration) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &Store{client: client, ttl: ttl}, nil
}

// Set stores a code for the email, replacing any pending one.
func (s *Store) Set(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, key(email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	slog.Debug("otp stored", "email", email, "ttl", s.ttl)
	return nil
}

// Verify reports whether the code matches the pending OTP for the email.
// Verification does not consume the code; reset does, via Clear.
func (s *Store) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read otp: %w", err)
	}
	return stored != "" && stored == code, nil
}

// Clear removes the pending OTP for the email, if any.
func (s *Store) Clear(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("failed to clear otp: %w", err)
	}
	return nil
}

// Ping checks redis connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

func key(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}
