package cache

import (
	"context"
	"testing"
)

// The login cache key must depend on the email alone so a password
// reset can invalidate it without the old password in hand.
func TestAuthKeyIndependentOfPassword(t *testing.T) {
	if authKey("ram@parlad.com") != authKey("ram@parlad.com") {
		t.Fatal("authKey is not deterministic")
	}
	if authKey("ram@parlad.com") == authKey("sita@parlad.com") {
		t.Error("authKey collides across emails")
	}
}

func TestCredentialDigestVariesByPassword(t *testing.T) {
	old := credentialDigest("ram@parlad.com", "oldpassword")
	new_ := credentialDigest("ram@parlad.com", "newpassword")
	if old == new_ {
		t.Error("credential digest does not change with the password")
	}
	if old != credentialDigest("ram@parlad.com", "oldpassword") {
		t.Error("credential digest is not deterministic")
	}
}

// Without Redis the cache degrades to no-ops; lookups must miss and
// writes and invalidations must not panic.
func TestAuthCacheDisabledWithoutRedis(t *testing.T) {
	if client != nil {
		t.Skip("redis client configured")
	}
	ctx := context.Background()
	CacheAuth(ctx, "ram@parlad.com", "password123", 7)
	if _, ok := GetCachedAuth(ctx, "ram@parlad.com", "password123"); ok {
		t.Error("GetCachedAuth hit with no redis client")
	}
	InvalidateAuth(ctx, "ram@parlad.com")
}
