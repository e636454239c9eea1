package logstream

import (
	"io"
	"sort"
	"strings"
)

const maskedStr = "***"

// masker wraps a stream writer with a masker
type masker struct {
	w io.Writer
	r *strings.Replacer
}

// NewMasker returns a writer that replaces every secret value with a mask
// before passing p on to w. Multi-line secrets are masked line by line.
func NewMasker(w io.Writer, secretData map[string]string) io.Writer {
	parts := make([]string, 0, len(secretData))
	for _, secret := range secretData {
		for _, part := range strings.Split(secret, "\n") {
			part = strings.TrimSpace(part)
			// single characters would mask unrelated output
			if len(part) < 2 {
				continue
			}
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return w
	}
	// longest first, so a secret containing another one is masked whole
	sort.Slice(parts, func(i, j int) bool {
		if len(parts[i]) != len(parts[j]) {
			return len(parts[i]) > len(parts[j])
		}
		return parts[i] < parts[j]
	})
	oldnew := make([]string, 0, 2*len(parts))
	for _, part := range parts {
		oldnew = append(oldnew, part, maskedStr)
	}
	return &masker{w: w, r: strings.NewReplacer(oldnew...)}
}

// Write masks p and writes it to the base writer. It reports len(p) on success
// so callers such as io.MultiWriter see a full write.
func (m *masker) Write(p []byte) (n int, err error) {
	if _, err = io.WriteString(m.w, m.r.Replace(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
