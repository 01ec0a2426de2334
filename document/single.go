package document

import (
	"bytes"
	"io"
	"os"

	"github.com/inkfathom/pdfgen"
)

// SinglePage is the simplest possible document: exactly one page, whose
// content stream is written directly into Content.
type SinglePage struct {
	Out     *pdf.Writer
	Content *bytes.Buffer

	width, height float64
	pagesRef      pdf.Reference
	pageRef       pdf.Reference

	base      io.Writer
	closeBase bool
}

// CreateSinglePage creates fileName and starts a new single-page document
// of the given size (in PDF points) writing to it.
func CreateSinglePage(fileName string, width, height float64, opt *pdf.WriterOptions) (*SinglePage, error) {
	fd, err := os.Create(fileName)
	if err != nil {
		return nil, err
	}
	doc, err := WriteSinglePage(fd, width, height, opt)
	if err != nil {
		fd.Close()
		return nil, err
	}
	doc.closeBase = true
	return doc, nil
}

// WriteSinglePage starts a new single-page document writing to w.
func WriteSinglePage(w io.Writer, width, height float64, opt *pdf.WriterOptions) (*SinglePage, error) {
	out, err := pdf.NewWriter(w, opt)
	if err != nil {
		return nil, err
	}

	return &SinglePage{
		Out:     out,
		Content: &bytes.Buffer{},
		width:   width,
		height:  height,

		pagesRef: out.Alloc(),
		pageRef:  out.Alloc(),
		base:     w,
	}, nil
}

// Close flushes the page's content stream, assembles the one-entry page
// tree, and closes the underlying document.
func (doc *SinglePage) Close() error {
	contentRef := doc.Out.Alloc()
	sw, err := doc.Out.OpenStream(contentRef, pdf.NewDict(), doc.Out.CompressStreams())
	if err != nil {
		return err
	}
	if _, err := sw.Write(doc.Content.Bytes()); err != nil {
		return err
	}
	if err := sw.End(); err != nil {
		return err
	}

	pageDict := pdf.NewDict()
	pageDict.Set("Type", pdf.Name("Page"))
	pageDict.Set("Parent", doc.pagesRef)
	pageDict.Set("MediaBox", &pdf.Rectangle{URx: doc.width, URy: doc.height})
	pageDict.Set("Contents", contentRef)
	pageHandle := doc.Out.Object(doc.pageRef)
	*pageHandle.Dict() = pageDict
	if err := pageHandle.End(); err != nil {
		return err
	}

	pagesDict := pdf.NewDict()
	pagesDict.Set("Type", pdf.Name("Pages"))
	pagesDict.Set("Kids", pdf.Array{doc.pageRef})
	pagesDict.Set("Count", pdf.Integer(1))
	pagesHandle := doc.Out.Object(doc.pagesRef)
	*pagesHandle.Dict() = pagesDict
	if err := pagesHandle.End(); err != nil {
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
