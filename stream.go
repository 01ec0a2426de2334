package pdf

import (
	"bytes"
)

// StreamWriter is a handle to an open stream object. Producers write their
// content through it and call End (or Close, its io.Closer-compatible
// alias) when done; calls after the first are no-ops.
type StreamWriter struct {
	w        *Writer
	ref      Reference
	dict     Dict
	compress bool

	raw    bytes.Buffer // producer's uncompressed bytes
	zw     *flateEncoder
	zbuf   bytes.Buffer
	ended  bool
}

// OpenStream allocates the stream's dictionary entries and returns a handle
// producers can write their content into. dict may be the zero Dict for a
// stream with no extra entries besides /Length and /Filter.
func (w *Writer) OpenStream(ref Reference, dict Dict, compress bool) (*StreamWriter, error) {
	entry := w.reg.entry(ref)
	if entry == nil || entry.state != objOpen {
		return nil, &WriteAfterEndError{Ref: ref}
	}
	entry.isStream = true
	if dict.values != nil {
		entry.dict = dict
	}

	sw := &StreamWriter{w: w, ref: ref, dict: entry.dict, compress: compress}
	if compress {
		sw.zw = newFlateEncoder(nopWriteCloser{&sw.zbuf})
	}
	return sw, nil
}

// Dict exposes the stream's dictionary for additional producer-set entries
// (e.g. /Subtype). End always overwrites /Length, and overwrites /Filter
// when the stream is compressed.
func (sw *StreamWriter) Dict() *Dict {
	return &sw.dict
}

// Write appends p to the stream's pending payload.
func (sw *StreamWriter) Write(p []byte) (int, error) {
	if sw.ended {
		return 0, &WriteAfterEndError{Ref: sw.ref}
	}
	if sw.compress {
		return sw.zw.Write(p)
	}
	return sw.raw.Write(p)
}

// End runs the pending payload through the filter and encryption stages and
// emits the finished indirect object. Close is an alias, so StreamWriter
// satisfies io.WriteCloser.
func (sw *StreamWriter) End() error {
	if sw.ended {
		return nil
	}
	sw.ended = true

	var payload []byte
	if sw.compress {
		if err := sw.zw.Close(); err != nil {
			return err
		}
		payload = sw.zbuf.Bytes()
		sw.dict.Set("Filter", Name("FlateDecode"))
	} else {
		payload = sw.raw.Bytes()
	}

	var err error
	payload, err = applyStreamCrypt(sw.w.enc, sw.ref, payload)
	if err != nil {
		return err
	}

	sw.dict.Set("Length", Integer(len(payload)))
	return sw.w.finalize(sw.ref, sw.dict, payload)
}

// Close is an alias for End, so a StreamWriter can be used as an
// io.WriteCloser.
func (sw *StreamWriter) Close() error {
	return sw.End()
}

type nopWriteCloser struct {
	w *bytes.Buffer
}

func (n nopWriteCloser) Write(p []byte) (int, error) { return n.w.Write(p) }
func (nopWriteCloser) Close() error                  { return nil }
