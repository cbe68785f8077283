// Package logtail reads log files for the viewer: a one-shot read of the
// last N lines to seed the list, and a Tailer that returns newly appended
// lines on each poll.
package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. Trailing
// carriage returns are stripped, matching what Tailer does for appended
// lines. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	// Only the last maxLines matter, so a ring buffer keeps memory bounded
	// however large the file is.
	ring := make([]string, maxLines)
	count, next := 0, 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		ring[next] = strings.TrimSuffix(scanner.Text(), "\r")
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, ring[(next-count+i+maxLines)%maxLines])
	}
	return lines, nil
}

// Tailer tracks a byte offset into a log file and returns complete lines
// appended since the previous poll. Truncation or rotation resets the
// offset, so the tailer picks the new file up from its beginning.
type Tailer struct {
	path    string
	offset  int64
	partial string
}

// NewTailer returns a Tailer positioned at the end of the file at path, so
// the first poll only reports lines written after construction. A missing
// file positions the tailer at the start.
func NewTailer(path string) *Tailer {
	t := &Tailer{path: path}
	if info, err := os.Stat(path); err == nil {
		t.offset = info.Size()
	}
	return t
}

// Next returns the complete lines appended since the last call. A missing
// file is not an error; it simply yields no lines until the file appears.
func (t *Tailer) Next() ([]string, error) {
	file, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < t.offset {
		// Truncated or rotated; start over.
		t.offset = 0
		t.partial = ""
	}
	if info.Size() == t.offset {
		return nil, nil
	}

	if _, err := file.Seek(t.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	t.offset += int64(len(data))

	chunk := t.partial + string(data)
	var lines []string
	for {
		i := strings.IndexByte(chunk, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, strings.TrimSuffix(chunk[:i], "\r"))
		chunk = chunk[i+1:]
	}
	// A trailing fragment without a newline is held back until the writer
	// finishes the line.
	t.partial = chunk
	return lines, nil
}
