// Package auth resolves the calling user from a server-side session.
//
// POST /api/v1/session binds a user ID to the session (StartSession); every
// other /api/v1 route runs behind RequireUser.
//
// Session keys should be 32 or 64 bytes for HMAC authentication,
// and 16, 24, or 32 bytes for AES encryption. Production deployments
// must use cryptographically random keys generated with:
//
//	openssl rand -base64 32
package auth

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/ghuser/giftregistry/pkg/cache"
)

const defaultSessionMaxAge = 7 * 24 * time.Hour

// SessionConfig carries the cookie keys and lifetime of a RedisStore.
type SessionConfig struct {
	AuthKey       []byte
	EncryptionKey []byte
	// Secure marks the cookie HTTPS-only; set it in production.
	Secure bool
	// MaxAge defaults to 7 days when zero or negative.
	MaxAge time.Duration
}

// RedisStore is a sessions.Store that keeps session values in Redis.
// Only the signed and encrypted session ID travels in the cookie.
//
// Redis keys: "<namespace>:session:<id>" expiring with the session.
// Values are gob-encoded; the registry stores only the user ID string.
type RedisStore struct {
	redis   *cache.RedisClient
	codecs  []securecookie.Codec
	options sessions.Options
}

// NewSessionStore creates a Redis-backed session store.
//
//	store := auth.NewSessionStore(redisClient, auth.SessionConfig{
//	    AuthKey:       []byte(cfg.SessionAuthKey),
//	    EncryptionKey: []byte(cfg.SessionEncryptionKey),
//	    Secure:        cfg.Environment == config.EnvProduction,
//	    MaxAge:        cfg.SessionMaxAge,
//	})
func NewSessionStore(rc *cache.RedisClient, cfg SessionConfig) *RedisStore {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}
	return &RedisStore{
		redis:  rc,
		codecs: securecookie.CodecsFromPairs(cfg.AuthKey, cfg.EncryptionKey),
		options: sessions.Options{
			Path:     "/",
			MaxAge:   int(maxAge / time.Second),
			HttpOnly: true,
			Secure:   cfg.Secure,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns the request's session, cached per request by the registry.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New decodes the session cookie and loads its values. Any failure along
// the way (no cookie, bad signature, expired key) yields a fresh session
// rather than an error, so the caller simply sees no user.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := s.options
	session.Options = &opts
	session.IsNew = true

	id, ok := s.decodeCookie(r, name)
	if !ok {
		return session, nil
	}
	session.ID = id
	if err := s.load(r.Context(), session); err != nil {
		session.ID = ""
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes its cookie. A negative MaxAge
// deletes the Redis key and expires the cookie.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			_ = s.redis.Client().Del(r.Context(), s.key(session.ID)).Err()
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}
	if err := s.store(r.Context(), session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *RedisStore) decodeCookie(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return "", false
	}
	return id, true
}

func (s *RedisStore) store(ctx context.Context, session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.redis.Client().Set(ctx, s.key(session.ID), buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("set session in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, session *sessions.Session) error {
	data, err := s.redis.Client().Get(ctx, s.key(session.ID)).Bytes()
	if err != nil {
		return fmt.Errorf("get session from redis: %w", err)
	}
	return gob.NewDecoder(bytes.NewReader(data)).Decode(&session.Values)
}

func (s *RedisStore) key(id string) string {
	return s.redis.Key("session", id)
}

func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}
