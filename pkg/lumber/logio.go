package lumber

import (
	"bytes"
)

// Writer turns a byte stream, typically the output of an external tool,
// into one log entry per line. It must be closed when finished to flush
// a trailing partial line.
type Writer struct {
	// Log specifies the logger to which the Writer will write messages.
	Log Logger
	buff bytes.Buffer
}

// NewWriter returns a new Writer that writes to the provided Logger at debug level.
func NewWriter(log Logger) *Writer {
	return &Writer{Log: log}
}

// Write splits the input on newlines and posts each complete line as a log
// entry. It always reports the full input length as written.
func (w *Writer) Write(bs []byte) (n int, err error) {
	n = len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}
		w.buff.Write(bytes.TrimSuffix(bs[:idx], []byte("\r")))
		// empty lines in the middle of the stream are kept so "a\n\nb" stays three entries
		w.flush(true)
		bs = bs[idx+1:]
	}
	return n, nil
}

// Close flushes any buffered partial line.
func (w *Writer) Close() error {
	return w.Sync()
}

// Sync flushes buffered data as a new log entry even if it doesn't end with a newline.
func (w *Writer) Sync() error {
	w.flush(false)
	return nil
}

func (w *Writer) flush(allowEmpty bool) {
	if allowEmpty || w.buff.Len() > 0 {
		w.Log.Debugf("%s", w.buff.String())
	}
	w.buff.Reset()
}
