package storage

import (
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"mediation-scheduler/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(&config.Config{
		StorageDir:        t.TempDir(),
		BaseURL:           "http://localhost:7010",
		StorageSigningKey: "test-signing-key",
	})
	require.NoError(t, err)
	return store
}

func TestSaveAndRead(t *testing.T) {
	store := testStore(t)

	key, err := store.Save("notice.pdf", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	data, err := store.Read(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestKeysAreOpaqueAndUnique(t *testing.T) {
	store := testStore(t)

	k1, err := store.Save("notice.pdf", []byte("one"))
	require.NoError(t, err)
	k2, err := store.Save("notice.pdf", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
	assert.NotContains(t, k1, "notice")
}

func TestSignedURLRoundTrip(t *testing.T) {
	store := testStore(t)

	key, err := store.Save("notice.pdf", []byte("content"))
	require.NoError(t, err)

	link, err := store.SignedURL(key, time.Hour)
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	expires, err := strconv.ParseInt(parsed.Query().Get("expires"), 10, 64)
	require.NoError(t, err)
	sig := parsed.Query().Get("sig")

	assert.True(t, store.VerifyDownload(key, expires, sig))

	t.Run("tampered signature rejected", func(t *testing.T) {
		assert.False(t, store.VerifyDownload(key, expires, "deadbeef"))
	})

	t.Run("tampered key rejected", func(t *testing.T) {
		assert.False(t, store.VerifyDownload("other-key.pdf", expires, sig))
	})

	t.Run("expired link rejected", func(t *testing.T) {
		past := time.Now().Add(-time.Minute).Unix()
		assert.False(t, store.VerifyDownload(key, past, sig))
	})
}

func TestSignedURLUnknownKey(t *testing.T) {
	store := testStore(t)
	_, err := store.SignedURL("../escape", time.Hour)
	assert.Error(t, err)
}

func TestSafePathRejectsTraversal(t *testing.T) {
	store := testStore(t)

	for _, key := range []string{"", "../secret", "a/b", "..%2F"} {
		_, err := store.Read(key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestDelete(t *testing.T) {
	store := testStore(t)

	key, err := store.Save("notice.pdf", []byte("bye"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(key))

	_, err = store.Read(key)
	assert.Error(t, err)
}
