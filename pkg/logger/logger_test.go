package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter("debug", &buf)

	l.Error(errors.New("upstream down"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "upstream down")

	buf.Reset()
	l.Warn("hold %s expired", "abc")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "hold abc expired")

	buf.Reset()
	l.Debug(42)
	assert.Contains(t, buf.String(), "unknown type")
}
