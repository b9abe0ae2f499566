package logx

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, "", 0)

	Info(l, "r1", "music.list", "ok", "count", 3)
	assert.Equal(t, `lvl=info req_id=r1 op=music.list msg="ok" count=3`, strings.TrimSpace(buf.String()))
}

func TestErrorWithOddPairs(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, "", 0)

	Error(l, "r2", "music.file", "open failed", errors.New("boom"), "id", "abc", "dangling")
	assert.Equal(t,
		`lvl=error req_id=r2 op=music.file msg="open failed" err="boom" id=abc dangling=(missing)`,
		strings.TrimSpace(buf.String()))
}
