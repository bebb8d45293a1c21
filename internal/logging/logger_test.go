package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestLogger_UsesRequestID(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "rid-42")
	New(ctx).Error("create_project", errors.New("boom"))

	assert.Equal(t, "[error] request_id=rid-42 operation=create_project error=boom\n", buf.String())
}

func TestLogger_UnknownRequest(t *testing.T) {
	buf := captureLog(t)

	New(context.Background()).Infof("export", "rows=%d", 3)

	assert.Equal(t, "[info] request_id=unknown operation=export rows=3\n", buf.String())
}

func TestLogger_LevelFilter(t *testing.T) {
	buf := captureLog(t)
	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetLevel(ParseLevel("warn"))
	l := New(context.Background())
	l.Infof("login", "user_id=%d", 1)
	l.Warnf("login", "user_id=%d bad password", 1)
	l.Error("login", errors.New("boom"))

	assert.Equal(t,
		"[warn] request_id=unknown operation=login user_id=1 bad password\n"+
			"[error] request_id=unknown operation=login error=boom\n",
		buf.String())

	buf.Reset()
	SetLevel(ParseLevel("error"))
	l.Warnf("rate_limit", "skipped")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}
