package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mediation-scheduler/internal/config"

	"github.com/google/uuid"
)

// Store is the narrow file-storage contract the notice layer depends on:
// persist an attachment under an opaque key and hand out expiring,
// signature-gated download links.
type Store interface {
	Save(name string, data []byte) (key string, err error)
	Read(key string) ([]byte, error)
	Delete(key string) error
	SignedURL(key string, ttl time.Duration) (string, error)
	VerifyDownload(key string, expires int64, signature string) bool
}

// LocalStore keeps attachments on local disk and signs download URLs with
// an HMAC so links can be shared without authentication.
type LocalStore struct {
	dir        string
	baseURL    string
	signingKey []byte
}

// NewLocalStore creates a local-disk store rooted at the configured directory
func NewLocalStore(cfg *config.Config) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	key := cfg.StorageSigningKey
	if key == "" {
		key = cfg.JWTSecret
	}
	return &LocalStore{
		dir:        cfg.StorageDir,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		signingKey: []byte(key),
	}, nil
}

// Save writes the attachment and returns its generated opaque key. The
// original filename only contributes its extension; the key itself is
// a UUID so keys are never guessable or colliding.
func (s *LocalStore) Save(name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	key := uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}
	return key, nil
}

// Read loads an attachment by key
func (s *LocalStore) Read(key string) ([]byte, error) {
	path, err := s.safePath(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Delete removes an attachment by key
func (s *LocalStore) Delete(key string) error {
	path, err := s.safePath(key)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// SignedURL returns an expiring download link for an attachment
func (s *LocalStore) SignedURL(key string, ttl time.Duration) (string, error) {
	if _, err := s.safePath(key); err != nil {
		return "", err
	}
	expires := time.Now().Add(ttl).Unix()
	sig := s.sign(key, expires)
	return fmt.Sprintf("%s/attachments/%s?expires=%d&sig=%s",
		s.baseURL, url.PathEscape(key), expires, sig), nil
}

// VerifyDownload checks a download link's signature and expiry
func (s *LocalStore) VerifyDownload(key string, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := s.sign(key, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *LocalStore) sign(key string, expires int64) string {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write([]byte(key + "|" + strconv.FormatInt(expires, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// safePath rejects keys that would escape the storage directory
func (s *LocalStore) safePath(key string) (string, error) {
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid attachment key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}
