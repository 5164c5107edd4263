package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ledger summary cache keys
const (
	SummaryKeyFmt = "ledger:%d:summary"
)

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// authKey derives the cache key from the email alone so a password
// change can drop the entry without knowing the old password.
func authKey(email string) string {
	h := sha256.Sum256([]byte(email))
	return "auth:" + hex.EncodeToString(h[:])[:32]
}

func credentialDigest(email, password string) string {
	h := sha256.Sum256([]byte(email + ":" + password))
	return hex.EncodeToString(h[:])
}

// GetCachedAuth returns the cached user ID when the given credentials
// match the last verified login for that email.
func GetCachedAuth(ctx context.Context, email, password string) (int, bool) {
	if client == nil {
		return 0, false
	}
	val, err := client.Get(ctx, authKey(email)).Result()
	if err != nil {
		return 0, false
	}
	digest, idStr, ok := strings.Cut(val, ":")
	if !ok || digest != credentialDigest(email, password) {
		return 0, false
	}
	userID, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches a verified login for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int) {
	if client == nil {
		return
	}
	val := credentialDigest(email, password) + ":" + strconv.Itoa(userID)
	client.Set(ctx, authKey(email), val, 15*time.Minute)
}

// InvalidateAuth removes the cached login for an email (password change,
// account deletion)
func InvalidateAuth(ctx context.Context, email string) {
	if client == nil {
		return
	}
	client.Del(ctx, authKey(email))
}

// ============================================
// Token Denylist (signout)
// ============================================

func denylistKey(token string) string {
	h := sha256.Sum256([]byte(token))
	return "denylist:" + hex.EncodeToString(h[:])[:32]
}

// DenylistToken marks a JWT as revoked until it would have expired anyway
func DenylistToken(ctx context.Context, token string, ttl time.Duration) {
	if client == nil || ttl <= 0 {
		return
	}
	client.Set(ctx, denylistKey(token), 1, ttl)
}

// IsTokenDenylisted reports whether a JWT was revoked by signout
func IsTokenDenylisted(ctx context.Context, token string) bool {
	if client == nil {
		return false
	}
	n, err := client.Exists(ctx, denylistKey(token)).Result()
	return err == nil && n > 0
}

// ============================================
// Ledger Summary Cache Functions
// ============================================

// GetCachedSummary returns the cached unfiltered summary for a ledger
func GetCachedSummary(ctx context.Context, ledgerID int) ([]byte, bool) {
	return GetCached(ctx, fmt.Sprintf(SummaryKeyFmt, ledgerID))
}

// CacheSummary caches a ledger summary for 5 minutes
func CacheSummary(ctx context.Context, ledgerID int, data []byte) {
	SetCached(ctx, fmt.Sprintf(SummaryKeyFmt, ledgerID), data, 5*time.Minute)
}

// InvalidateSummary clears the summary cache after a transaction write
func InvalidateSummary(ctx context.Context, ledgerID int) {
	InvalidateKeys(ctx, fmt.Sprintf(SummaryKeyFmt, ledgerID))
}

// ============================================
// Generic Cache Functions
// ============================================

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}
