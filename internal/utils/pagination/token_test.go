package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	ts := time.Date(2025, 6, 15, 10, 30, 0, 123456789, time.UTC)
	rowID := "c2f8a1f0-0000-4000-8000-000000000001"

	token := EncodeToken(ts, rowID)
	assert.NotEmpty(t, token)

	gotTS, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, rowID, gotID)
}

func TestDecodeTokenInvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeTokenMissingSeparator(t *testing.T) {
	_, _, err := DecodeToken("bm8tc2VwYXJhdG9y") // "no-separator"
	assert.Error(t, err)
}

func TestDecodeTokenBadTimestamp(t *testing.T) {
	_, _, err := DecodeToken("bm90LWEtdGltZXxyb3ctaWQ=") // "not-a-time|row-id"
	assert.Error(t, err)
}
