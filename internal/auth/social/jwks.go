package social

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// JWK is one published signing key from a provider's JWKS document.
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []JWK `json:"keys"`
}

// KeySet fetches and caches a provider's JWKS. Keys are held in-process for
// the configured TTL and, when a Redis client is supplied, the raw document
// is also cached there so restarts and sibling instances skip the upstream
// fetch.
type KeySet struct {
	url        string
	httpClient *http.Client
	ttl        time.Duration
	rdb        *redis.Client

	mu       sync.RWMutex
	expires  time.Time
	keyByKID map[string]JWK
}

func NewKeySet(url string, ttl time.Duration, rdb *redis.Client) *KeySet {
	return &KeySet{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		ttl:        ttl,
		rdb:        rdb,
		keyByKID:   map[string]JWK{},
	}
}

// Key returns the JWK with the given key id, refreshing the set if needed.
func (ks *KeySet) Key(ctx context.Context, kid string) (JWK, error) {
	if key, ok := ks.cached(kid); ok {
		return key, nil
	}
	if err := ks.refresh(ctx); err != nil {
		return JWK{}, err
	}
	if key, ok := ks.cached(kid); ok {
		return key, nil
	}
	return JWK{}, fmt.Errorf("key not found for kid %s", kid)
}

func (ks *KeySet) cached(kid string) (JWK, bool) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	if time.Now().After(ks.expires) {
		return JWK{}, false
	}
	key, ok := ks.keyByKID[kid]
	return key, ok
}

func (ks *KeySet) cacheKey() string { return "jwks:" + ks.url }

func (ks *KeySet) refresh(ctx context.Context) error {
	raw, err := ks.loadFromRedis(ctx)
	if err != nil {
		raw, err = ks.fetch(ctx)
		if err != nil {
			return err
		}
		ks.storeInRedis(ctx, raw)
	}

	var doc jwksDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("jwks: decode: %w", err)
	}

	keys := map[string]JWK{}
	for _, key := range doc.Keys {
		if key.Kid == "" || key.Kty != "RSA" || key.N == "" || key.E == "" {
			continue
		}
		keys[key.Kid] = key
	}
	if len(keys) == 0 {
		return errors.New("jwks: no usable RSA keys")
	}

	ks.mu.Lock()
	ks.keyByKID = keys
	ks.expires = time.Now().Add(ks.ttl)
	ks.mu.Unlock()
	return nil
}

func (ks *KeySet) loadFromRedis(ctx context.Context) ([]byte, error) {
	if ks.rdb == nil {
		return nil, redis.Nil
	}
	return ks.rdb.Get(ctx, ks.cacheKey()).Bytes()
}

func (ks *KeySet) storeInRedis(ctx context.Context, raw []byte) {
	if ks.rdb == nil {
		return
	}
	// Cache failures are non-fatal; the in-process cache still applies.
	_ = ks.rdb.Set(ctx, ks.cacheKey(), raw, ks.ttl).Err()
}

func (ks *KeySet) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ks.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := ks.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	var buf json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// RSAPublicKey decodes the JWK's modulus and exponent.
func (k JWK) RSAPublicKey() (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var exp uint64
	for _, b := range eb {
		exp = (exp << 8) | uint64(b)
	}
	if exp == 0 {
		return nil, errors.New("invalid exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(exp),
	}, nil
}
