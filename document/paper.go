// Package document is a thin producer layer on top of the pdf core: it
// assembles a page tree and hands each page a raw content-stream handle to
// write into. Text layout, vector graphics, and everything else that
// decides what bytes go into a content stream belongs to a higher-level
// producer built on top of this package.
package document

import "github.com/inkfathom/pdfgen"

// Standard paper sizes, in PDF points (1/72 inch), as MediaBox rectangles
// with the origin at the lower-left corner.
var (
	A4     = &pdf.Rectangle{URx: 595.28, URy: 841.89}
	A5     = &pdf.Rectangle{URx: 419.53, URy: 595.28}
	Letter = &pdf.Rectangle{URx: 612, URy: 792}
	Legal  = &pdf.Rectangle{URx: 612, URy: 1008}
)
