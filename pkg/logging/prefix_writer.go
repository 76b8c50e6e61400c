package logging

import (
	"bytes"
	"io"
)

// PrefixWriter decorates an io.Writer so every complete line starts with a
// fixed prefix. Partial writes are buffered until their newline arrives.
type PrefixWriter struct {
	prefix  []byte
	dst     io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter creates a PrefixWriter writing to w.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), dst: w}
}

// Write implements io.Writer. The returned count covers the input bytes, not
// the decorated output.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending.Write(p)

	for {
		raw := pw.pending.Bytes()
		nl := bytes.IndexByte(raw, '\n')
		if nl < 0 {
			break
		}
		line := pw.pending.Next(nl + 1)
		if _, err := pw.dst.Write(pw.prefix); err != nil {
			return len(p), err
		}
		if _, err := pw.dst.Write(line); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}
