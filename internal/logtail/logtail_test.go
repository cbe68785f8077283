package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func appendFile(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
}

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	writeFile(t, logPath, content.String())

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"partial", 5, all[5:]},
		{"exactly all", 10, all},
		{"more than exists", 20, all},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Read(logPath, tc.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("Read = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestRead_StripsCarriageReturns(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	writeFile(t, logPath, "windows line\r\nplain line\n")

	got, err := Read(logPath, 5)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := []string{"windows line", "plain line"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read = %v, want %v", got, want)
	}
}

func TestRead_NonPositiveLimitReturnsNothing(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "test.log"), 0)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Read = %v, want nil", got)
	}
}

func TestRead_MissingFileIsNotAnError(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Read = %v, want nil", got)
	}
}

func TestTailer_StartsAtEndOfExistingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	writeFile(t, logPath, "old line\n")

	tailer := NewTailer(logPath)
	lines, err := tailer.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if lines != nil {
		t.Fatalf("Next = %v, want nil (nothing appended yet)", lines)
	}

	appendFile(t, logPath, "new line 1\nnew line 2\n")
	lines, err = tailer.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	want := []string{"new line 1", "new line 2"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Next = %v, want %v", lines, want)
	}
}

func TestTailer_HoldsBackPartialLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	tailer := NewTailer(logPath)

	appendFile(t, logPath, "complete\nincomp")
	lines, err := tailer.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"complete"}) {
		t.Fatalf("Next = %v, want [complete]", lines)
	}

	appendFile(t, logPath, "lete\n")
	lines, err = tailer.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"incomplete"}) {
		t.Fatalf("Next = %v, want [incomplete]", lines)
	}
}

func TestTailer_ResetsOnTruncation(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	writeFile(t, logPath, "first generation, a fairly long line\n")

	tailer := NewTailer(logPath)
	writeFile(t, logPath, "rotated\n")

	lines, err := tailer.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"rotated"}) {
		t.Fatalf("Next = %v, want [rotated]", lines)
	}
}

func TestTailer_MissingFileYieldsNothing(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "never-created.log")
	tailer := NewTailer(logPath)
	lines, err := tailer.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if lines != nil {
		t.Fatalf("Next = %v, want nil", lines)
	}
}

func TestTailer_HandlesCarriageReturns(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	tailer := NewTailer(logPath)

	appendFile(t, logPath, "windows line\r\n")
	lines, err := tailer.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"windows line"}) {
		t.Fatalf("Next = %v, want [windows line]", lines)
	}
}
