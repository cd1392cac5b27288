package radix

import (
	"github.com/hideo55/go-popcount"
)

// Key addresses a child of a node: either the byte the child's text starts with
// or the Terminator marking that the parent's path is a complete word.
type Key struct {
	b    byte
	term bool
}

// Terminator is the child key of an end-of-word marker.
var Terminator = Key{term: true}

// ByteKey returns the key of a child whose text starts with b.
func ByteKey(b byte) Key {
	return Key{b: b}
}

// keyOf returns the key for a non-empty text.
func keyOf(text string) Key {
	return Key{b: text[0]}
}

func (k Key) IsTerminator() bool {
	return k.term
}

func (k Key) String() string {
	if k.term {
		return "$"
	}
	return string([]byte{k.b})
}

// fan is an ordered child index.
//
// Byte keys are tracked by a 256-bit bitmap (4 words, 64 keys each); the twig of
// a key sits in twigs at the rank of its bit, i.e. the number of lower bits set.
// The terminator has a slot of its own.
type fan struct {
	bitmap [4]uint64
	twigs  []*node
	end    *node
}

// rank returns whether b is present and the index of its twig.
func (f *fan) rank(b byte) (bool, int) {
	var (
		ofs = b >> 6
		idx = b & 0x3F // the lowest 6 bits (2**6 == 64)
		bmp = f.bitmap[ofs]
		cnt = popcount.Count(bmp & ((1 << idx) - 1))
	)

	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(f.bitmap[j])
	}

	return (bmp>>idx)&0x01 != 0, int(cnt)
}

func (f *fan) len() int {
	if f.end != nil {
		return len(f.twigs) + 1
	}
	return len(f.twigs)
}

func (f *fan) get(k Key) *node {
	if k.term {
		return f.end
	}
	if ok, i := f.rank(k.b); ok {
		return f.twigs[i]
	}
	return nil
}

// put adds or replaces the twig under k.
func (f *fan) put(k Key, n *node) {
	if k.term {
		f.end = n
		return
	}

	ok, i := f.rank(k.b)
	if ok {
		f.twigs[i] = n
		return
	}

	f.bitmap[k.b>>6] |= 1 << (k.b & 0x3F)

	f.twigs = append(f.twigs, nil)
	copy(f.twigs[i+1:], f.twigs[i:])
	f.twigs[i] = n
}

// each calls fn for the terminator first, then for byte keys in ascending order.
func (f *fan) each(fn func(Key, *node)) {
	if f.end != nil {
		fn(Terminator, f.end)
	}

	i := 0
	for ofs := 0; ofs < len(f.bitmap); ofs++ {
		for bmp := f.bitmap[ofs]; bmp != 0; bmp &= bmp - 1 {
			var (
				low = bmp & -bmp
				b   = byte(ofs<<6) | byte(popcount.Count(low-1))
			)

			fn(ByteKey(b), f.twigs[i])
			i++
		}
	}
}
