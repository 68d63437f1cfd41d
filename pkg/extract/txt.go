package extract

import (
	"fmt"
	"os"
	"strings"
)

func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read txt: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
