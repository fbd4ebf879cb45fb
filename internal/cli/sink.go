package cli

import (
	"bufio"
	"fmt"
	"os"
)

// appendLines appends each line to the file at path, creating it if needed.
func appendLines(path string, lines []string) (err error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:mnd // Regular file mode
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)

	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	return nil
}
