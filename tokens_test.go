package pdf

import (
	"bytes"
	"testing"
)

func TestFormatReal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0, "0"},
		{1, "1"},
		{-1, "-1"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{1.000001, "1.000001"},
		{1.1234565, "1.123456"},
		{100, "100"},
	}
	for _, c := range cases {
		got := formatReal(c.in)
		if got != c.want {
			t.Errorf("formatReal(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWriteName(t *testing.T) {
	var buf bytes.Buffer
	tw := newTokenWriter(&buf, nil)
	if err := tw.writeName("A B#C(D)"); err != nil {
		t.Fatal(err)
	}
	want := "/A#20B#23C#28D#29"
	if buf.String() != want {
		t.Errorf("writeName: got %q, want %q", buf.String(), want)
	}
}

func TestWriteLiteralString(t *testing.T) {
	var buf bytes.Buffer
	tw := newTokenWriter(&buf, nil)
	if err := tw.writeLiteralString([]byte("a(b)c\\d\ne")); err != nil {
		t.Fatal(err)
	}
	want := `(a\(b\)c\\d\ne)`
	if buf.String() != want {
		t.Errorf("writeLiteralString: got %q, want %q", buf.String(), want)
	}
}

func TestWriteHexString(t *testing.T) {
	var buf bytes.Buffer
	tw := newTokenWriter(&buf, nil)
	if err := tw.writeHexString([]byte{0xDE, 0xAD, 0xBE, 0xEF}); err != nil {
		t.Fatal(err)
	}
	want := "<DEADBEEF>"
	if buf.String() != want {
		t.Errorf("writeHexString: got %q, want %q", buf.String(), want)
	}
}

func TestTokenWriterCountsBytes(t *testing.T) {
	var buf bytes.Buffer
	tw := newTokenWriter(&buf, nil)
	if err := tw.writeRaw("hello"); err != nil {
		t.Fatal(err)
	}
	if tw.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", tw.Pos())
	}
}
