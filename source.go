package wyrand

import (
	"io"
	randv2 "math/rand/v2"
)

// Source is the bit-generator interface WyRand both implements and
// consumes. Word output comes from Uint32/Uint64, arbitrary-length output
// from Fill, and the embedded io.Reader is the fallible form for callers
// written against streams that can fail.
type Source interface {
	Uint32() uint32
	Uint64() uint64
	Fill(p []byte)
	io.Reader
}

// *WyRand also satisfies math/rand/v2's Source, so it can drive rand.New
// for shuffles, ranges and distributions.
var (
	_ Source        = (*WyRand)(nil)
	_ randv2.Source = (*WyRand)(nil)
)
