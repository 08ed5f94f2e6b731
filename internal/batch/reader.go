package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadPhrases reads one phrase per line. Blank lines and lines starting with
// "#" are skipped.
func ReadPhrases(r io.Reader) ([]string, error) {
	var phrases []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		phrases = append(phrases, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read phrases: %w", err)
	}

	return phrases, nil
}
