// Copyright 2026 The go-packed Authors

package packed

// Pointer indirects pointee through an offset written with ptrCoder
// (which must be a fixed-size unsigned coder, e.g. U32LE). The offset
// counts from the start of the buffer the pointer is written into: the
// whole output for a top-level pointer, or the enclosing pointee's own
// bytes for a pointer nested inside another pointer's pointee.
// Encoding reserves a placeholder and defers serializing pointee to
// Writer.Finish, which lays every deferred pointee out after the main
// body, grouped in registration order (ptr* pointee*) rather than
// interleaved with each pointer's own placeholder.
//
// Decoding enables the reader's read-bitset (Reader.EnablePtr) so that
// two pointers whose targets overlap — or a cycle that would otherwise
// recurse indefinitely — fail fast with ErrMultipleReads instead of
// doing unbounded or combinatorial work, per spec's DoS-protection
// requirement for pointer-bearing formats.
func Pointer(ptrCoder Coder, pointee Coder) Coder {
	ptrSize, ok := ptrCoder.Size()
	if !ok {
		panic("packed: Pointer requires a fixed-size ptrCoder")
	}
	return newFixedCoder(ptrSize,
		func(w *Writer, v interface{}) error {
			sub := NewWriter()
			if err := pointee.EncodeStream(sub, v); err != nil {
				return err
			}
			buf, err := sub.Finish()
			if err != nil {
				return err
			}
			placeholderOffset := w.Pos()
			if err := w.Bytes(make([]byte, ptrSize)); err != nil {
				return err
			}
			w.RegisterPointer(placeholderOffset, ptrCoder, buf)
			return nil
		},
		func(r *Reader) (interface{}, error) {
			r.EnablePtr()
			offsetVal, err := ptrCoder.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			n, ok := asLength(offsetVal)
			if !ok || n < 0 {
				return nil, r.fail(KindValueDomain, ErrOverflow, "Pointer: offset %v is not a non-negative integer", offsetVal)
			}
			sub, err := r.OffsetReader(n)
			if err != nil {
				return nil, err
			}
			return pointee.DecodeStream(sub)
		},
	)
}
