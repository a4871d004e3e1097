package template

import (
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
)

// alphabet is the base64 variant the game uses for template codes. Each
// character carries 6 bits, least significant bit first in the stream.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var charValues = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i)
	}
	return table
}()

// bitReader reads little-endian bit fields out of a template code.
type bitReader struct {
	sextets []byte
	pos     int
}

func newBitReader(code string) (*bitReader, error) {
	sextets := make([]byte, len(code))
	for i := 0; i < len(code); i++ {
		v := charValues[code[i]]
		if v < 0 {
			return nil, errors.InvalidEncodingf("character %q is not in the template alphabet", code[i]).
				WithMeta("position", i)
		}
		sextets[i] = byte(v)
	}
	return &bitReader{sextets: sextets}, nil
}

// read consumes the next n bits and returns them as an integer.
func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > len(r.sextets)*6 {
		return 0, errors.InvalidEncoding("template data ends mid-field")
	}
	v := 0
	for i := 0; i < n; i++ {
		bit := (r.sextets[r.pos/6] >> (r.pos % 6)) & 1
		v |= int(bit) << i
		r.pos++
	}
	return v, nil
}

// remaining reports how many unread bits are left.
func (r *bitReader) remaining() int {
	return len(r.sextets)*6 - r.pos
}

// bitWriter builds a template code from little-endian bit fields. The final
// sextet is implicitly zero-padded.
type bitWriter struct {
	sextets []byte
	nbits   int
}

func (w *bitWriter) write(v, n int) {
	for i := 0; i < n; i++ {
		if w.nbits%6 == 0 {
			w.sextets = append(w.sextets, 0)
		}
		if v>>i&1 == 1 {
			w.sextets[w.nbits/6] |= 1 << (w.nbits % 6)
		}
		w.nbits++
	}
}

func (w *bitWriter) String() string {
	out := make([]byte, len(w.sextets))
	for i, s := range w.sextets {
		out[i] = alphabet[s]
	}
	return string(out)
}

// bitsFor returns the number of bits needed to represent v (minimum 1).
func bitsFor(v int) int {
	n := 1
	for v > 1 {
		n++
		v >>= 1
	}
	return n
}
