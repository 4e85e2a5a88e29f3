package logging

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const sampleLog = `{"time":"2026-01-02T10:00:02Z","level":"INFO","msg":"selection confirmed","component":"cmd","selected":2}
not json at all
{"time":"2026-01-02T10:00:00Z","level":"DEBUG","msg":"selection changed","component":"multicheck","reason":"baseline"}

{"time":"2026-01-02T10:00:01Z","level":"WARN","msg":"dropping duplicate option","component":"multicheck","value":"1"}
`

func writeLog(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func messages(entries []LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestAggregateLogs(t *testing.T) {
	t.Run("sorts entries and skips bad lines", func(t *testing.T) {
		dir := t.TempDir()
		writeLog(t, dir, LogFileName, sampleLog)

		entries, err := AggregateLogs(dir)
		if err != nil {
			t.Fatalf("AggregateLogs failed: %v", err)
		}

		want := []string{"selection changed", "dropping duplicate option", "selection confirmed"}
		if diff := cmp.Diff(want, messages(entries)); diff != "" {
			t.Errorf("messages (-want +got):\n%s", diff)
		}
		if entries[0].Component != "multicheck" || entries[0].Attrs["reason"] != "baseline" {
			t.Errorf("first entry = %+v", entries[0])
		}
	})

	t.Run("includes rotated backups", func(t *testing.T) {
		dir := t.TempDir()
		writeLog(t, dir, LogFileName, `{"time":"2026-01-02T10:00:03Z","level":"INFO","msg":"newest"}`+"\n")
		writeLog(t, dir, LogFileName+".1", `{"time":"2026-01-02T10:00:02Z","level":"INFO","msg":"middle"}`+"\n")

		var gz bytes.Buffer
		zw := gzip.NewWriter(&gz)
		_, _ = zw.Write([]byte(`{"time":"2026-01-02T10:00:01Z","level":"INFO","msg":"oldest"}` + "\n"))
		_ = zw.Close()
		writeLog(t, dir, LogFileName+".2.gz", gz.String())

		entries, err := AggregateLogs(dir)
		if err != nil {
			t.Fatalf("AggregateLogs failed: %v", err)
		}
		if diff := cmp.Diff([]string{"oldest", "middle", "newest"}, messages(entries)); diff != "" {
			t.Errorf("messages (-want +got):\n%s", diff)
		}
	})

	t.Run("missing log file", func(t *testing.T) {
		if _, err := AggregateLogs(t.TempDir()); err == nil {
			t.Error("expected an error when no log file exists")
		}
	})
}

func TestFilterLogs(t *testing.T) {
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	entries := []LogEntry{
		{Timestamp: base, Level: LevelDebug, Message: "selection changed", Component: "multicheck"},
		{Timestamp: base.Add(time.Second), Level: LevelWarn, Message: "dropping duplicate option", Component: "multicheck"},
		{Timestamp: base.Add(2 * time.Second), Level: LevelInfo, Message: "selection confirmed", Component: "cmd"},
		{Timestamp: base.Add(3 * time.Second), Level: LevelError, Message: "watch failed", Component: "app"},
	}

	tests := []struct {
		name   string
		filter LogFilter
		want   []string
	}{
		{
			name:   "empty filter keeps everything",
			filter: LogFilter{},
			want:   []string{"selection changed", "dropping duplicate option", "selection confirmed", "watch failed"},
		},
		{
			name:   "level is a minimum",
			filter: LogFilter{Level: "warn"},
			want:   []string{"dropping duplicate option", "watch failed"},
		},
		{
			name:   "component",
			filter: LogFilter{Component: "multicheck"},
			want:   []string{"selection changed", "dropping duplicate option"},
		},
		{
			name:   "since",
			filter: LogFilter{Since: base.Add(2 * time.Second)},
			want:   []string{"selection confirmed", "watch failed"},
		},
		{
			name:   "message and level combined",
			filter: LogFilter{MessageContains: "selection", Level: LevelInfo},
			want:   []string{"selection confirmed"},
		},
		{
			name:   "no match",
			filter: LogFilter{Component: "nobody"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := messages(FilterLogs(entries, tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterLogs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteLogEntries(t *testing.T) {
	entries := []LogEntry{{
		Timestamp: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		Level:     LevelInfo,
		Message:   "selection confirmed",
		Component: "cmd",
		Attrs:     map[string]any{"selected": float64(2)},
	}}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteLogEntries(&buf, entries, "text"); err != nil {
			t.Fatal(err)
		}
		want := "[2026-01-02 10:00:00.000] INFO cmd - selection confirmed {\"selected\":2}\n"
		if buf.String() != want {
			t.Errorf("text = %q, want %q", buf.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteLogEntries(&buf, entries, "JSON"); err != nil {
			t.Fatal(err)
		}
		var got []LogEntry
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if diff := cmp.Diff(entries, got); diff != "" {
			t.Errorf("json round trip (-want +got):\n%s", diff)
		}
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteLogEntries(&buf, nil, "json"); err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("json = %q, want []", buf.String())
		}
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteLogEntries(&buf, entries, "csv"); err != nil {
			t.Fatal(err)
		}
		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("invalid CSV: %v", err)
		}
		want := [][]string{
			{"timestamp", "level", "component", "message", "attrs"},
			{"2026-01-02T10:00:00Z", "INFO", "cmd", "selection confirmed", `{"selected":2}`},
		}
		if diff := cmp.Diff(want, records); diff != "" {
			t.Errorf("csv (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := WriteLogEntries(&bytes.Buffer{}, entries, "xml"); err == nil {
			t.Error("expected an error for an unsupported format")
		}
	})
}

func TestParseLogEntry(t *testing.T) {
	entry, err := parseLogEntry(`{"time":"2026-01-02T10:00:00.5Z","level":"DEBUG","msg":"m","component":"tui","rows":3}`)
	if err != nil {
		t.Fatalf("parseLogEntry failed: %v", err)
	}
	want := LogEntry{
		Timestamp: time.Date(2026, 1, 2, 10, 0, 0, 500_000_000, time.UTC),
		Level:     LevelDebug,
		Message:   "m",
		Component: "tui",
		Attrs:     map[string]any{"rows": float64(3)},
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Errorf("parseLogEntry (-want +got):\n%s", diff)
	}

	if _, err := parseLogEntry("{"); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
