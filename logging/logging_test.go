package logging

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  hclog.Level
	}{
		{"", hclog.Info},
		{"debug", hclog.Debug},
		{"WARN", hclog.Warn},
		{"nonsense", hclog.Info},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := New(Config{Level: tt.level, Output: &bytes.Buffer{}})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Name: "wmr", JSON: true, Output: &buf})
	l.Named("network").Info("built", "segments", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "built", entry["@message"])
	assert.Equal(t, "wmr.network", entry["@module"])
	assert.EqualValues(t, 3, entry["segments"])
}

func TestInitLogging_RedirectsStdlib(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetFlags(log.LstdFlags)

	var buf bytes.Buffer
	InitLogging(Config{Level: "info", Output: &buf})
	log.Printf("[WARN] something odd")

	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "something odd")
}
