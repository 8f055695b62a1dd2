package sflog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
)

func TestLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf), WithLevel(logiface.LevelInformational))

	log.Info().Str("state", "idle").Log("thermostat starting")

	out := buf.String()
	assert.True(t, strings.Contains(out, `"state":"idle"`))
	assert.True(t, strings.Contains(out, "thermostat starting"))
}

func TestLogger_LevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf), WithLevel(logiface.LevelError))

	log.Info().Log("should be filtered")
	log.Err().Log("should appear")

	out := buf.String()
	assert.False(t, strings.Contains(out, "should be filtered"))
	assert.True(t, strings.Contains(out, "should appear"))
}
