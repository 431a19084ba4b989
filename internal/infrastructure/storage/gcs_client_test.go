package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	name := ObjectName("/avatars/u1/", "image/png", at)
	assert.True(t, strings.HasPrefix(name, "avatars/u1/"))
	assert.True(t, strings.HasSuffix(name, "-20240301103000.png"))

	assert.True(t, strings.HasSuffix(ObjectName("x", "application/octet-stream", at), ".bin"))
}

func TestPublicURLRoundTrip(t *testing.T) {
	url := PublicURL("gighub-media", "avatars/u1/a.png")
	assert.Equal(t, "https://storage.googleapis.com/gighub-media/avatars/u1/a.png", url)

	object, err := ObjectFromURL("gighub-media", url)
	require.NoError(t, err)
	assert.Equal(t, "avatars/u1/a.png", object)

	_, err = ObjectFromURL("other-bucket", url)
	assert.Error(t, err)

	_, err = ObjectFromURL("gighub-media", "https://example.com/a.png")
	assert.Error(t, err)
}
