package pdf

import (
	"compress/zlib"
	"io"
)

// flateEncoder wraps a stream's writer in a zlib (FlateDecode) compressor.
// Predictor support is not needed here: predictors exist to help image and
// font-program producers, which are out of scope.
type flateEncoder struct {
	zw    *zlib.Writer
	under io.WriteCloser
}

func newFlateEncoder(under io.WriteCloser) *flateEncoder {
	return &flateEncoder{zw: zlib.NewWriter(under), under: under}
}

func (f *flateEncoder) Write(p []byte) (int, error) {
	return f.zw.Write(p)
}

func (f *flateEncoder) Close() error {
	if err := f.zw.Close(); err != nil {
		return err
	}
	return f.under.Close()
}
