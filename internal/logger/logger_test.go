package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  string
	}{
		{
			name:  "debug shows everything",
			level: "debug",
			want:  "[DEBUG] d\n[INFO] i\n[WARN] w\n[ERROR] e\n",
		},
		{
			name:  "default is info",
			level: "",
			want:  "[INFO] i\n[WARN] w\n[ERROR] e\n",
		},
		{
			name:  "unknown level falls back to info",
			level: "chatty",
			want:  "[INFO] i\n[WARN] w\n[ERROR] e\n",
		},
		{
			name:  "error only",
			level: "ERROR",
			want:  "[ERROR] e\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.level)
			l.Debugf("d")
			l.Infof("i")
			l.Warnf("w")
			l.Errorf("e")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_FormatsArgsAndTrimsNewline(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")
	l.Infof("phase %s: %d passed\n", "required-files", 7)
	assert.Equal(t, "[INFO] phase required-files: 7 passed\n", buf.String())
}

func TestLogger_NilIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Infof("ignored")
		l.Errorf("ignored")
	})
}

func TestLogger_BufferIsNeverColored(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug")
	assert.False(t, l.colorOutput)
}
