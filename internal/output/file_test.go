package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileSink_FormatInference(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		format  string
		wantErr string
	}{
		{name: "json extension", file: "out.json"},
		{name: "ndjson extension", file: "out.ndjson"},
		{name: "jsonl extension", file: "out.jsonl"},
		{name: "explicit format", file: "out.txt", format: "ndjson"},
		{name: "unknown extension", file: "out.unknown", wantErr: "cannot infer output format"},
		{name: "unsupported format", file: "out.json", format: "xml", wantErr: "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			s, err := NewFileSink(path, tt.format)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, s.Close())
		})
	}
}

func TestNewFileSink_EmptyPath(t *testing.T) {
	_, err := NewFileSink("", "json")
	require.Error(t, err)
}

func TestNewFileSink_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.json")
	s, err := NewFileSink(path, "")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileSink_JSONDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s, err := NewFileSink(path, "")
	require.NoError(t, err)
	writeAll(t, s, sampleRun(false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc fileDocument
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "run-1", doc.RunID)
	assert.Equal(t, "Codec Verification", doc.Title)
	assert.Equal(t, "/tmp/proj", doc.BaseDir)
	assert.False(t, doc.Passed)
	assert.Equal(t, 1, doc.ExitCode)
	require.Len(t, doc.Phases, 2)
	assert.Equal(t, "files", doc.Phases[0].PhaseID)
	assert.Len(t, doc.Phases[0].Results, 2)
	assert.Equal(t, "SHARED", doc.Phases[1].Results[0].Pattern)
}

func TestFileSink_JSONEmptyRunHasPhasesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s, err := NewFileSink(path, "json")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"phases": []`)
}

func TestFileSink_NDJSONStreamsEveryEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	s, err := NewFileSink(path, "")
	require.NoError(t, err)
	events := sampleRun(true)
	writeAll(t, s, events)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var types []EventType
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		var e Event
		require.NoError(t, json.Unmarshal([]byte(line), &e), "line: %s", line)
		types = append(types, e.Type)
		if e.Type == EventCheckResult {
			require.NotNil(t, e.Result)
			assert.NotEmpty(t, e.Result.Message)
			assert.Equal(t, e.Result.PhaseID, e.Phase)
		}
	}
	require.NoError(t, sc.Err())
	require.Len(t, types, len(events))
	assert.Equal(t, EventRunStarted, types[0])
	assert.Equal(t, EventRunFinished, types[len(types)-1])
}
