package bench

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func ensureDir(path string) error {
	d := filepath.Dir(path)
	if d == "." {
		return nil
	}
	return os.MkdirAll(d, 0o755)
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = itoa(v)
	}
	return strings.Join(parts, " ")
}
