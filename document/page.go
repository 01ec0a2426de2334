package document

import (
	"bytes"

	"github.com/inkfathom/pdfgen"
)

// Page is a handle to one page of a MultiPage document. Producers write
// content-stream operators into Content and call Close when the page is
// complete.
type Page struct {
	Content *bytes.Buffer
	Dict    pdf.Dict

	doc *MultiPage
	ref pdf.Reference
}

// Close flushes the page's content stream and appends the page to its
// document's page tree. After Close, the Page must not be used again.
func (p *Page) Close() error {
	contentRef := p.doc.Out.Alloc()
	sw, err := p.doc.Out.OpenStream(contentRef, pdf.NewDict(), p.doc.Out.CompressStreams())
	if err != nil {
		return err
	}
	if _, err := sw.Write(p.Content.Bytes()); err != nil {
		return err
	}
	if err := sw.End(); err != nil {
		return err
	}

	p.Dict.Set("Contents", contentRef)
	h := p.doc.Out.Object(p.ref)
	*h.Dict() = p.Dict
	if err := h.End(); err != nil {
		return err
	}

	p.doc.kids = append(p.doc.kids, p.ref)
	p.doc.numOpen--
	return nil
}
