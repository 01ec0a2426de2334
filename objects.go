package pdf

import (
	"fmt"
	"math"
	"strconv"
)

// Object is implemented by every PDF value: Null, Bool, Integer, Real, Name,
// String, TextString, Bytes, Date, Array, Dict and Reference. Dispatch on the
// concrete kind is done through writeTo rather than a type switch at
// serialization time, so that adding a new value kind only touches the one
// file that defines it.
type Object interface {
	writeTo(w *tokenWriter, ref Reference) error
}

// Null is the PDF null object.
type Null struct{}

func (Null) writeTo(w *tokenWriter, _ Reference) error {
	return w.writeRaw("null")
}

// Bool is a PDF boolean.
type Bool bool

func (b Bool) writeTo(w *tokenWriter, _ Reference) error {
	if b {
		return w.writeRaw("true")
	}
	return w.writeRaw("false")
}

// Integer is a PDF integer number.
type Integer int64

func (x Integer) writeTo(w *tokenWriter, _ Reference) error {
	return w.writeRaw(strconv.FormatInt(int64(x), 10))
}

// Real is a PDF real number. Output is decimal, up to 6 fractional digits,
// trailing zeros stripped, never in scientific notation.
type Real float64

func (x Real) writeTo(w *tokenWriter, _ Reference) error {
	return w.writeRaw(formatReal(float64(x)))
}

func formatReal(x float64) string {
	if x == 0 {
		return "0"
	}
	s := strconv.FormatFloat(x, 'f', 6, 64)
	if dot := indexByte(s, '.'); dot >= 0 {
		end := len(s)
		for end > dot+1 && s[end-1] == '0' {
			end--
		}
		if end == dot+1 {
			end = dot
		}
		s = s[:end]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// Number constructs the most specific numeric Object for x: an Integer when x
// has no fractional part and fits the int64 range, a Real otherwise.
func Number(x float64) Object {
	if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
		return Integer(int64(x))
	}
	return Real(x)
}

// Name is a PDF name, written with a leading slash and #XX escaping for bytes
// outside the printable-ASCII, non-delimiter range.
type Name string

func (n Name) writeTo(w *tokenWriter, _ Reference) error {
	return w.writeName(string(n))
}

// String is a PDF string whose bytes are written unchanged as a literal
// string, subject to per-object encryption when the document is encrypted.
// Text encoding (PDFDocEncoding or UTF-16BE) is applied by TextString, not
// here.
type String []byte

func (s String) writeTo(w *tokenWriter, ref Reference) error {
	buf := []byte(s)
	if w.enc != nil {
		var err error
		buf, err = w.enc.EncryptBytes(ref, append([]byte(nil), buf...))
		if err != nil {
			return err
		}
	}
	return w.writeLiteralString(buf)
}

// TextString is a human-readable PDF string: PDFDocEncoding when possible,
// else UTF-16BE with a leading byte-order mark.
type TextString string

func (s TextString) writeTo(w *tokenWriter, ref Reference) error {
	return String(encodeTextString(string(s))).writeTo(w, ref)
}

// Bytes is an opaque byte buffer, serialized the same way as String.
type Bytes []byte

func (b Bytes) writeTo(w *tokenWriter, ref Reference) error {
	return String(b).writeTo(w, ref)
}

// Array is an ordered sequence of Objects.
type Array []Object

func (a Array) writeTo(w *tokenWriter, ref Reference) error {
	if err := w.writeRaw("["); err != nil {
		return err
	}
	for i, obj := range a {
		if i > 0 {
			if err := w.writeRaw(" "); err != nil {
				return err
			}
		}
		if obj == nil {
			obj = Null{}
		}
		if err := obj.writeTo(w, ref); err != nil {
			return err
		}
	}
	return w.writeRaw("]")
}

// Reference is an indirect reference to an object by number and generation.
// Generation is always 0 for objects created by this writer.
type Reference uint64

func NewReference(number, generation uint32) Reference {
	return Reference(uint64(number)<<16 | uint64(generation))
}

func (r Reference) Number() uint32 {
	return uint32(r >> 16)
}

func (r Reference) Generation() uint16 {
	return uint16(r)
}

func (r Reference) writeTo(w *tokenWriter, _ Reference) error {
	return w.writeRaw(fmt.Sprintf("%d %d R", r.Number(), r.Generation()))
}

func (r Reference) String() string {
	return fmt.Sprintf("%d %d R", r.Number(), r.Generation())
}
