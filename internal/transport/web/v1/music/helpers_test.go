package music

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saimahendra282/testdeployment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"jpeg header", "data:image/jpeg;base64,aGVsbG8=", "hello"},
		{"unpadded", "data:audio/mpeg;base64,aGVsbG8", "hello"},
		{"bare comma", ",QQ==", "A"},
		{"empty payload", "data:audio/mpeg;base64,", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := decodeDataURL(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(b))
		})
	}
}

func TestDecodeDataURLErrors(t *testing.T) {
	_, err := decodeDataURL("aGVsbG8=")
	assert.ErrorIs(t, err, errNoDataURLPayload)

	// декодер строгий: мусор и url-safe алфавит не пропускаются
	for _, in := range []string{
		"data:image/jpeg;base64,@@@",
		"data:image/jpeg;base64,aGVs bG8=",
		"data:image/jpeg;base64,-_-_",
	} {
		_, err = decodeDataURL(in)
		assert.ErrorContains(t, err, "decode base64", in)
	}
}

func TestBlobName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "pic_1700000000123", blobName(domain.PicFilePrefix, now))
	assert.Equal(t, "audio_1700000000123", blobName(domain.AudioFilePrefix, now))
}

func TestBaseURL(t *testing.T) {
	r := httptest.NewRequest("GET", "http://music.local:5000/music", nil)
	u := baseURL(r)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "music.local:5000", u.Host)

	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https", baseURL(r).Scheme)
}

func TestToEntry(t *testing.T) {
	r := httptest.NewRequest("GET", "http://localhost:5000/music", nil)
	e, err := toEntry(baseURL(r), domain.Music{ID: "m1", Name: "Song A", PicID: "p1", AudioID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, domain.MusicEntry{
		ID:       "m1",
		Name:     "Song A",
		PicURL:   "http://localhost:5000/file/p1",
		AudioURL: "http://localhost:5000/file/a1",
	}, e)

	_, err = toEntry(baseURL(r), domain.Music{ID: "m2", Name: "broken", PicID: "p2"})
	assert.ErrorContains(t, err, "audio url")
}
