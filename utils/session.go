package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carhive/models"

	"github.com/go-redis/redis/v8"
)

const SessionPrefix = "session:"

// Sessions live as long as the token that references them.
const SessionTTL = 72 * time.Hour

// SaveSession stores the session under the hashed token in one SET, so a
// partially populated session is never observable.
func SaveSession(client *redis.Client, tokenHash string, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, SessionPrefix+tokenHash, data, SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves the session for the hashed token. A missing key
// returns redis.Nil to the caller.
func GetSession(client *redis.Client, tokenHash string) (*models.Session, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, SessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// ClearSession removes the session in one DEL; all fields go away together.
func ClearSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, SessionPrefix+tokenHash).Err()
}
