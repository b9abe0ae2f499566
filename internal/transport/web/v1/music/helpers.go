package music

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/saimahendra282/testdeployment/internal/domain"
)

var errNoDataURLPayload = errors.New("data url has no payload separator")

// decodeDataURL отрезает заголовок "data:<mime>;base64," и декодирует payload.
// Паддинг необязателен.
func decodeDataURL(s string) ([]byte, error) {
	i := strings.IndexByte(s, ',')
	if i < 0 {
		return nil, errNoDataURLPayload
	}
	payload := strings.TrimRight(strings.TrimSpace(s[i+1:]), "=")
	b, err := base64.RawStdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return b, nil
}

// blobName — фиксированный префикс + unix-время в миллисекундах
func blobName(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// baseURL — протокол и хост, по которым пришёл запрос
func baseURL(r *http.Request) url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return url.URL{Scheme: scheme, Host: r.Host}
}

// fileURL подставляет id файла в шаблон <proto>://<host>/file/<id>
func fileURL(base url.URL, id domain.BlobID) (string, error) {
	if id == "" {
		return "", errors.New("empty blob reference")
	}
	if base.Host == "" {
		return "", errors.New("request host is empty")
	}
	u := base
	u.Path = "/file/" + id
	return u.String(), nil
}

func toEntry(base url.URL, m domain.Music) (domain.MusicEntry, error) {
	pic, err := fileURL(base, m.PicID)
	if err != nil {
		return domain.MusicEntry{}, fmt.Errorf("pic url: %w", err)
	}
	audio, err := fileURL(base, m.AudioID)
	if err != nil {
		return domain.MusicEntry{}, fmt.Errorf("audio url: %w", err)
	}
	return domain.MusicEntry{ID: m.ID, Name: m.Name, PicURL: pic, AudioURL: audio}, nil
}
