// internal/report/writer.go
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile membuat dir (jika belum ada) lalu menulis content persis apa adanya.
func WriteFile(dir, name, content string) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	path = filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
