package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts for a y/N answer on the given reader and returns true only
// for an explicit yes. Used by destructive commands when running on a TTY.
func Confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
