// internals/helpers/storage/keys.go
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// buildObjectKey: "<dir>/<slug>_<timestamp>_<rand><ext>"
func buildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	ts := time.Now().Format("20060102_150405")
	key := fmt.Sprintf("%s_%s_%s%s", slugify(base), ts, randHex(3), ext)

	dir = strings.Trim(dir, "/")
	if dir != "" {
		parts := strings.Split(dir, "/")
		for i, p := range parts {
			parts[i] = slugify(p)
		}
		return strings.Join(parts, "/") + "/" + key
	}
	return key
}
