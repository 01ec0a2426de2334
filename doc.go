// Package pdf implements the object-serialization core and Standard
// Security Handler of a PDF file writer: a streaming document assembler
// that lays out indirect objects, a typed value model with exact-byte
// token formatting, and RC4/AES encryption per the Standard Security
// Handler revisions 2 through 5.
//
// A Writer assembles one document:
//
//	out, err := pdf.NewWriter(w, &pdf.WriterOptions{Version: pdf.V1_7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ref := out.Alloc()
//	stream, err := out.OpenStream(ref, pdf.NewDict(), true)
//	...
//	stream.Write(content)
//	stream.End()
//
//	out.Catalog.Pages = pagesRef
//	err = out.Close()
//
// The following types implement the Object interface and can be stored as
// dictionary or array entries:
//
//	Array
//	Bool
//	Bytes
//	Date
//	Dict
//	Integer
//	Name
//	Null
//	Real
//	Reference
//	String
//	TextString
//
// Higher-level producers - page content, fonts, images, outlines - are
// expected to sit on top of this package and interact with it solely
// through Writer.Alloc, Writer.Object and Writer.OpenStream; see the
// document subpackage for the page-tree assembly these producers share.
package pdf
