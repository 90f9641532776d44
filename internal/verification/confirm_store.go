package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConfirmStore records email verification confirmations in Redis. A
// confirmation is written when the tenant clicks the link in the challenge
// email and consumed by the next verify call for that domain.
type ConfirmStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewConfirmStore creates a confirm store; ttl bounds how long a
// confirmation stays consumable.
func NewConfirmStore(rdb *redis.Client, ttl time.Duration) *ConfirmStore {
	return &ConfirmStore{rdb: rdb, ttl: ttl}
}

func confirmKey(domain string) string {
	return fmt.Sprintf("verify:email:%s", domain)
}

// Record stores a confirmation for a domain
func (cs *ConfirmStore) Record(ctx context.Context, domain, token string) error {
	err := cs.rdb.Set(ctx, confirmKey(domain), token, cs.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store email confirmation: %w", err)
	}
	return nil
}

// consumeScript deletes the confirmation only when the stored token matches,
// so a stale confirmation for a rotated token cannot be consumed.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Consume atomically checks and removes a confirmation. Returns true when a
// confirmation matching the token existed.
func (cs *ConfirmStore) Consume(ctx context.Context, domain, token string) (bool, error) {
	n, err := consumeScript.Run(ctx, cs.rdb, []string{confirmKey(domain)}, token).Int()
	if err != nil {
		return false, fmt.Errorf("failed to consume email confirmation: %w", err)
	}
	return n > 0, nil
}
