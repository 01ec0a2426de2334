package document

import (
	"bytes"
	"testing"

	"github.com/inkfathom/pdfgen"
)

func TestMultiPageThreePages(t *testing.T) {
	var buf bytes.Buffer
	doc, err := WriteMultiPage(&buf, A4.Dx(), A4.Dy(), &pdf.WriterOptions{Version: pdf.V1_7})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		p := doc.AddPage()
		p.Content.WriteString("q 1 0 0 1 0 0 cm Q\n")
		if err := p.Close(); err != nil {
			t.Fatal(err)
		}
	}

	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if got := bytes.Count(out, []byte("/Type /Page ")); got != 3 {
		t.Errorf("expected 3 page objects, counted %d", got)
	}
	if !bytes.Contains(out, []byte("/Count 3")) {
		t.Error("missing /Count 3 on the page tree")
	}
}

func TestMultiPageCloseRejectsOpenPages(t *testing.T) {
	var buf bytes.Buffer
	doc, err := WriteMultiPage(&buf, A4.Dx(), A4.Dy(), &pdf.WriterOptions{Version: pdf.V1_7})
	if err != nil {
		t.Fatal(err)
	}
	doc.AddPage() // never closed

	if err := doc.Close(); err == nil {
		t.Error("expected an error closing a document with a page still open")
	}
}
