package editor

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	cerr "github.com/InAnYan/EditorAttempt1/internal/errors"
)

// loadLines reads path and splits it on '\n'. The separators are dropped;
// a trailing newline does not produce an empty last line.
func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cerr.FileIO("open", path, err)
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, cerr.FileIO("read", path, err)
		}
	}
}

// saveLines writes every line followed by '\n', replacing path.
func saveLines(path string, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return cerr.FileIO("write", path, err)
	}
	return nil
}
