package document

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/inkfathom/pdfgen"
)

// MultiPage is a document with an arbitrary number of pages, added one at a
// time via AddPage.
type MultiPage struct {
	Out *pdf.Writer

	pagesRef pdf.Reference
	mediaBox *pdf.Rectangle
	kids     []pdf.Reference
	numOpen  int

	base      io.Writer
	closeBase bool
}

// CreateMultiPage creates fileName and starts a new multi-page document
// writing to it.
func CreateMultiPage(fileName string, width, height float64, opt *pdf.WriterOptions) (*MultiPage, error) {
	fd, err := os.Create(fileName)
	if err != nil {
		return nil, err
	}
	doc, err := WriteMultiPage(fd, width, height, opt)
	if err != nil {
		fd.Close()
		return nil, err
	}
	doc.closeBase = true
	return doc, nil
}

// WriteMultiPage starts a new multi-page document writing to w.
func WriteMultiPage(w io.Writer, width, height float64, opt *pdf.WriterOptions) (*MultiPage, error) {
	out, err := pdf.NewWriter(w, opt)
	if err != nil {
		return nil, err
	}

	return &MultiPage{
		Out:      out,
		pagesRef: out.Alloc(),
		mediaBox: &pdf.Rectangle{URx: width, URy: height},
		base:     w,
	}, nil
}

// AddPage returns a handle for a new page. The page is not part of the
// document's page tree until Close is called on it.
func (doc *MultiPage) AddPage() *Page {
	doc.numOpen++

	d := pdf.NewDict()
	d.Set("Type", pdf.Name("Page"))
	d.Set("Parent", doc.pagesRef)

	return &Page{
		Content: &bytes.Buffer{},
		Dict:    d,
		doc:     doc,
		ref:     doc.Out.Alloc(),
	}
}

// Close finalizes the page tree and the underlying document.
func (doc *MultiPage) Close() error {
	if doc.numOpen != 0 {
		return fmt.Errorf("pdf/document: %d pages still open", doc.numOpen)
	}

	kids := make(pdf.Array, len(doc.kids))
	for i, ref := range doc.kids {
		kids[i] = ref
	}

	pagesDict := pdf.NewDict()
	pagesDict.Set("Type", pdf.Name("Pages"))
	pagesDict.Set("Kids", kids)
	pagesDict.Set("Count", pdf.Integer(len(doc.kids)))
	pagesDict.Set("MediaBox", doc.mediaBox)

	h := doc.Out.Object(doc.pagesRef)
	*h.Dict() = pagesDict
	if err := h.End(); err != nil {
		return err
	}

	doc.Out.Catalog.Pages = doc.pagesRef
	if err := doc.Out.Close(); err != nil {
		return err
	}

	if doc.closeBase {
		if c, ok := doc.base.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}
