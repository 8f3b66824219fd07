package logger

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func TestFormatFields_Sorted(t *testing.T) {
	got := formatFields(Fields{"b": 2, "a": "x", "c": 1.5, "d": int64(7)})
	assert.Equal(t, "{a=x, b=2, c=1.50, d=7}", got)
	assert.Equal(t, "", formatFields(nil))
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("catalog loaded", Fields{"chords": 24})
	Warn("slow parse", nil)
	Debug("dsl", Fields{"events": 3})
	Error("boom", errors.New("bad"), Fields{"notation": "chord"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] catalog loaded {chords=24}")
	assert.Contains(t, out, "[WARN] slow parse")
	assert.Contains(t, out, "[DEBUG] dsl {events=3}")
	assert.Contains(t, out, "[ERROR] boom: bad {notation=chord}")
}

func TestLogAPIRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/chords", nil)
	c.Set("request_id", "req-1")

	fields := WithContext(c)
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/api/v1/chords", fields["path"])

	LogAPIRequest(c, 0, 200, nil)
	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "status_code=200")
}
