package pdf

// This file contains the composite data structures built from the
// elementary types in objects.go: dates, rectangles and the text-string
// encoding rules.

import (
	"fmt"
	"time"
	"unicode/utf16"
)

var utf16BOM = []byte{0xFE, 0xFF}

// encodeTextString renders s as the bytes of a PDF text string: the
// PDFDocEncoding-compatible subset when every rune fits in a single byte
// below 0x100, otherwise UTF-16BE with a leading byte-order mark.
func encodeTextString(s string) []byte {
	fits := true
	for _, r := range s {
		if r > 0xff {
			fits = false
			break
		}
	}
	if fits {
		buf := make([]byte, 0, len(s))
		for _, r := range s {
			buf = append(buf, byte(r))
		}
		return buf
	}

	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, 2+2*len(units))
	out = append(out, utf16BOM...)
	for _, u := range units {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

// Date is an instant in time, serialized as a PDF date literal string in
// UTC: "D:YYYYMMDDHHmmSSZ00'00'".
type Date time.Time

func (d Date) writeTo(w *tokenWriter, ref Reference) error {
	return TextString(d.pdfString()).writeTo(w, ref)
}

func (d Date) pdfString() string {
	t := time.Time(d).UTC()
	return fmt.Sprintf("D:%04d%02d%02d%02d%02d%02dZ00'00'",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// Rectangle is a PDF rectangle, given by two opposite corners. LLx/LLy need
// not be less than URx/URy; producers are expected to pass normalized
// corners.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

func (r *Rectangle) writeTo(w *tokenWriter, ref Reference) error {
	arr := Array{Number(r.LLx), Number(r.LLy), Number(r.URx), Number(r.URy)}
	return arr.writeTo(w, ref)
}

// Dx reports the rectangle's width.
func (r *Rectangle) Dx() float64 { return r.URx - r.LLx }

// Dy reports the rectangle's height.
func (r *Rectangle) Dy() float64 { return r.URy - r.LLy }
