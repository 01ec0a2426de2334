package pdf

import (
	"fmt"
	"io"
	"time"
)

// WriterOptions configures a new document at construction time.
type WriterOptions struct {
	// Version selects the PDF version, and with it the Standard Security
	// Handler revision used if encryption is enabled. Zero value is V1_3.
	Version Version

	// Info holds the document information dictionary. A nil Info is
	// treated as empty.
	Info *Info

	// UserPassword and OwnerPassword enable encryption when either is
	// non-empty. If OwnerPassword is empty, UserPassword is used for both.
	UserPassword  string
	OwnerPassword string

	// Permissions records the capabilities granted to User access. Ignored
	// unless encryption is enabled. The zero value denies everything;
	// most callers that enable encryption want PermissionsAll.
	Permissions Permissions

	// Compress controls whether stream payloads are FlateDecode-compressed.
	// nil means true.
	Compress *bool
}

// Writer assembles a single PDF document: it owns the indirect-object
// registry, the output byte counter, and (if configured) the security
// handler, and produces a byte-exact file on Close.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	Version  Version
	Catalog  *Catalog
	Info     *Info
	compress bool

	tw  *tokenWriter
	reg *registry
	enc *encryptInfo

	fileID  [16]byte
	encRef  Reference
	closed  bool
}

// NewWriter creates a new document writing to w. The caller must call
// Close to emit the xref table, trailer and EOF marker.
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}
	info := opt.Info
	if info == nil {
		info = &Info{}
	}

	useEncryption := opt.UserPassword != "" || opt.OwnerPassword != ""
	if useEncryption && info.CreationDate.IsZero() {
		// CreationDate feeds the file-ID derivation that the security core
		// uses as encryption-key salt; fill in a value rather than fail.
		info.CreationDate = time.Now()
	}

	fileID := generateFileID(info)

	var enc *encryptInfo
	if useEncryption {
		var err error
		enc, err = newEncryptInfo(fileID[:], opt.UserPassword, opt.OwnerPassword, opt.Permissions, opt.Version)
		if err != nil {
			return nil, err
		}
	}

	compress := true
	if opt.Compress != nil {
		compress = *opt.Compress
	}

	doc := &Writer{
		Version:  opt.Version,
		Info:     info,
		compress: compress,
		reg:      newRegistry(),
		enc:      enc,
		fileID:   fileID,
		Catalog:  &Catalog{extensionLevel: opt.Version.extensionLevel()},
	}
	doc.tw = newTokenWriter(w, enc)

	if err := doc.tw.writeRaw(opt.Version.header()); err != nil {
		return nil, err
	}
	// Binary-marker comment: four bytes >= 0x80, so the file is
	// recognized as binary by naive transfer tools.
	if err := doc.tw.writeRaw("%\xe2\xe3\xcf\xd3\n"); err != nil {
		return nil, err
	}

	return doc, nil
}

// CompressStreams reports whether newly opened streams are FlateDecode
// compressed by default, per the Compress writer option.
func (w *Writer) CompressStreams() bool {
	return w.compress
}

// Alloc reserves the next object number without writing anything to the
// sink, returning a reference producers can embed in other dictionaries
// before the object itself is written.
func (w *Writer) Alloc() Reference {
	return w.reg.alloc()
}

// Ref is a handle to an open, dictionary-only indirect object (as opposed
// to a stream - see OpenStream).
type Ref struct {
	w     *Writer
	ref   Reference
	dict  Dict
	ended bool
}

// Object returns a handle for mutating the dictionary of a reference
// previously obtained from Alloc, and eventually finalizing it with End.
func (w *Writer) Object(ref Reference) *Ref {
	entry := w.reg.entry(ref)
	return &Ref{w: w, ref: ref, dict: entry.dict}
}

// Dict exposes the object's dictionary for mutation before End.
func (h *Ref) Dict() *Dict {
	return &h.dict
}

// Reference returns the object number/generation this handle refers to.
func (h *Ref) Reference() Reference {
	return h.ref
}

// End finalizes the object, writing "N G obj\n<dict>\nendobj\n" at the
// current sink offset. Calling End twice is a no-op.
func (h *Ref) End() error {
	if h.ended {
		return nil
	}
	h.ended = true
	return h.w.finalize(h.ref, h.dict, nil)
}

// finalize writes one indirect object (dictionary-only, or a stream when
// payload is non-nil) and marks the registry entry written.
func (w *Writer) finalize(ref Reference, dict Dict, payload []byte) error {
	entry := w.reg.entry(ref)
	if entry == nil {
		return fmt.Errorf("pdf: finalize of unknown reference %s", ref)
	}
	if entry.state == objWritten {
		return nil
	}

	entry.offset = w.tw.Pos()
	if err := w.tw.writeIndirectHeader(ref.Number(), ref.Generation()); err != nil {
		return err
	}
	if err := dict.writeTo(w.tw, ref); err != nil {
		return err
	}
	if payload != nil {
		if err := w.tw.writeRaw("\nstream\n"); err != nil {
			return err
		}
		if err := w.tw.write(payload); err != nil {
			return err
		}
		if err := w.tw.writeRaw("\nendstream"); err != nil {
			return err
		}
	}
	if err := w.tw.writeRaw("\nendobj\n"); err != nil {
		return err
	}

	entry.dict = dict
	entry.state = objWritten
	return nil
}

// Close finalizes any still-open objects (info, catalog, encryption
// dictionary, and anything a producer left open), then emits the xref
// table, trailer, and startxref/%%EOF footer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.Catalog.Pages == 0 {
		return &EmptyDocumentError{}
	}

	infoRef := w.Alloc()
	if err := w.finalize(infoRef, w.Info.asDict(), nil); err != nil {
		return err
	}

	catalogRef := w.Alloc()
	if err := w.finalize(catalogRef, w.Catalog.asDict(), nil); err != nil {
		return err
	}

	if w.enc != nil {
		w.encRef = w.Alloc()
		// The O/U/OE/UE/Perms strings in this dictionary are the security
		// parameters themselves, not document content: they must reach the
		// file exactly as computed, never passed back through the
		// per-object String encryption that every other indirect object's
		// strings go through (which would derive a key from encRef and
		// encrypt them a second time, corrupting them). Suspend the token
		// writer's encryption for the duration of this one object, the same
		// bypass writeTrailer uses for the file ID.
		savedEnc := w.tw.enc
		w.tw.enc = nil
		err := w.finalize(w.encRef, w.enc.AsDict(), nil)
		w.tw.enc = savedEnc
		if err != nil {
			return err
		}
	}

	// Finalize any objects a producer allocated but never explicitly
	// ended (e.g. intermediate pages-tree nodes); loop in case finalizing
	// one allocates another.
	for {
		open := w.reg.openEntries()
		if len(open) == 0 {
			break
		}
		for _, num := range open {
			ref := NewReference(num, 0)
			entry := w.reg.entry(ref)
			if err := w.finalize(ref, entry.dict, nil); err != nil {
				return err
			}
		}
	}

	startxref := w.tw.Pos()
	if err := w.writeXref(); err != nil {
		return err
	}
	if err := w.writeTrailer(infoRef, catalogRef); err != nil {
		return err
	}
	return w.tw.writeRaw(fmt.Sprintf("startxref\n%d\n%%%%EOF\n", startxref))
}

func (w *Writer) writeXref() error {
	count := w.reg.count() + 1
	if err := w.tw.writeRaw(fmt.Sprintf("xref\n0 %d\n", count)); err != nil {
		return err
	}
	if err := w.tw.writeRaw("0000000000 65535 f \n"); err != nil {
		return err
	}
	for i := 0; i < w.reg.count(); i++ {
		entry := w.reg.entries[i]
		line := fmt.Sprintf("%010d %05d n \n", entry.offset, 0)
		if err := w.tw.writeRaw(line); err != nil {
			return err
		}
	}
	return nil
}

// writeTrailer emits the trailer dictionary directly rather than through the
// Object/Dict machinery: the trailer's /ID strings are never encrypted (they
// are not indirect objects and have no (obj, gen) to derive a per-object key
// from), so they must bypass the encrypting String.writeTo path entirely.
func (w *Writer) writeTrailer(infoRef, catalogRef Reference) error {
	if err := w.tw.writeRaw(fmt.Sprintf("trailer\n<< /Size %d /Root %s /Info %s /ID [",
		w.reg.count()+1, catalogRef, infoRef)); err != nil {
		return err
	}
	if err := w.tw.writeHexString(w.fileID[:]); err != nil {
		return err
	}
	if err := w.tw.writeHexString(w.fileID[:]); err != nil {
		return err
	}
	if err := w.tw.writeRaw("]"); err != nil {
		return err
	}
	if w.enc != nil {
		if err := w.tw.writeRaw(fmt.Sprintf(" /Encrypt %s", w.encRef)); err != nil {
			return err
		}
	}
	return w.tw.writeRaw(" >>\n")
}
