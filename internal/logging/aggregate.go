package logging

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogEntry is one parsed line of the JSON log.
type LogEntry struct {
	Timestamp time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// LogFilter selects log entries. Zero fields match everything and set
// fields are combined with AND.
type LogFilter struct {
	// Level keeps entries at or above this level (DEBUG < INFO < WARN < ERROR)
	Level string
	// Component keeps entries logged by this component
	Component string
	// Since keeps entries at or after this time
	Since time.Time
	// MessageContains keeps entries whose message contains this substring
	MessageContains string
}

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// AggregateLogs reads multicheck.log in dir together with its rotated
// backups, compressed or not, and returns every entry sorted by time.
// Lines that are not valid JSON are skipped.
func AggregateLogs(dir string) ([]LogEntry, error) {
	active := filepath.Join(dir, LogFileName)
	if _, err := os.Stat(active); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no log file found in %s: %w", dir, err)
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	paths := []string{active}
	backups, _ := filepath.Glob(active + ".*")
	paths = append(paths, backups...)

	var entries []LogEntry
	for _, path := range paths {
		fileEntries, err := readLogFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

func readLogFile(path string) ([]LogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		defer func() { _ = zr.Close() }()
		r = zr
	}

	scanner := bufio.NewScanner(r)
	// Increase buffer size for potentially long log lines
	const maxScanTokenSize = 1024 * 1024
	scanner.Buffer(make([]byte, 64*1024), maxScanTokenSize)

	var entries []LogEntry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseLogEntry(line)
		if err != nil {
			// Partial recovery from corrupted logs
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return entries, nil
}

// parseLogEntry parses a single JSON log line into a LogEntry.
func parseLogEntry(line string) (LogEntry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return LogEntry{}, fmt.Errorf("invalid JSON: %w", err)
	}

	entry := LogEntry{Attrs: make(map[string]any)}
	for k, v := range raw {
		s, _ := v.(string)
		switch k {
		case "time":
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				entry.Timestamp = t
			}
		case "level":
			entry.Level = s
		case "msg":
			entry.Message = s
		case "component":
			entry.Component = s
		default:
			entry.Attrs[k] = v
		}
	}
	return entry, nil
}

// FilterLogs returns the entries matching filter, in order.
func FilterLogs(entries []LogEntry, filter LogFilter) []LogEntry {
	if filter == (LogFilter{}) {
		return entries
	}

	var filtered []LogEntry
	for _, entry := range entries {
		if matchesFilter(entry, filter) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func matchesFilter(entry LogEntry, filter LogFilter) bool {
	if filter.Level != "" {
		want, wantOK := levelOrder[strings.ToUpper(filter.Level)]
		got, gotOK := levelOrder[entry.Level]
		if wantOK && gotOK && got < want {
			return false
		}
	}
	if filter.Component != "" && entry.Component != filter.Component {
		return false
	}
	if !filter.Since.IsZero() && entry.Timestamp.Before(filter.Since) {
		return false
	}
	if filter.MessageContains != "" && !strings.Contains(entry.Message, filter.MessageContains) {
		return false
	}
	return true
}

// ExportFormats lists the formats WriteLogEntries accepts.
func ExportFormats() []string {
	return []string{"text", "json", "csv"}
}

// WriteLogEntries writes entries to w as "text", "json", or "csv".
func WriteLogEntries(w io.Writer, entries []LogEntry, format string) error {
	switch strings.ToLower(format) {
	case "json":
		if entries == nil {
			entries = []LogEntry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "text", "":
		return writeText(w, entries)
	case "csv":
		return writeCSV(w, entries)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: %s)", format, strings.Join(ExportFormats(), ", "))
	}
}

// writeText writes one line per entry: [TIMESTAMP] LEVEL component - MESSAGE {attrs}
func writeText(w io.Writer, entries []LogEntry) error {
	for _, entry := range entries {
		parts := []string{
			"[" + entry.Timestamp.Format("2006-01-02 15:04:05.000") + "]",
			entry.Level,
		}
		if entry.Component != "" {
			parts = append(parts, entry.Component)
		}
		parts = append(parts, "-", entry.Message)
		if len(entry.Attrs) > 0 {
			attrsJSON, _ := json.Marshal(entry.Attrs)
			parts = append(parts, string(attrsJSON))
		}

		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("failed to write text entry: %w", err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, entries []LogEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"timestamp", "level", "component", "message", "attrs"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range entries {
		attrsJSON := ""
		if len(entry.Attrs) > 0 {
			if b, err := json.Marshal(entry.Attrs); err == nil {
				attrsJSON = string(b)
			}
		}
		record := []string{
			entry.Timestamp.Format(time.RFC3339Nano),
			entry.Level,
			entry.Component,
			entry.Message,
			attrsJSON,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
