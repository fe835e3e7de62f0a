// Copyright 2026 The go-packed Authors

package packed

// deferredPointer is a Writer record pairing a placeholder offset with
// to-be-appended pointee bytes, patched during Finish. Mirrors spec.md's
// "Deferred pointer" glossary entry.
type deferredPointer struct {
	placeholderOffset int
	placeholderSize    int
	placeholderCoder   Coder
	pointee            []byte
}

// Writer is an append-only byte buffer with a bit sub-buffer, a path
// stack, and a deferred-pointer list resolved at Finish. Grounded on the
// teacher's internal/bsatn.Writer (err-latching, byte/bytes shape),
// extended with the bit buffer, path stack and pointer plumbing spec.md
// §4.2 requires.
type Writer struct {
	body []byte

	bitBuf byte
	bitPos int // number of bits currently buffered, 0..7

	stack    pathStack
	deferred []deferredPointer

	err error
}

// NewWriter constructs an empty Writer.
func NewWriter() *Writer { return &Writer{} }

func (w *Writer) fail(kind Kind, err error, format string, args ...interface{}) error {
	e := newError(kind, w.stack.currentPath(), err, format, args...)
	if w.err == nil {
		w.err = e
	}
	return e
}

// Pos reports the number of bytes written to the main body so far
// (excluding not-yet-flushed bit-buffer bits and any deferred pointees).
func (w *Writer) Pos() int { return len(w.body) }

// Byte appends a single byte. Fails if the bit buffer is unaligned.
func (w *Writer) Byte(b byte) error {
	if w.bitPos != 0 {
		return w.fail(KindStructural, ErrMisalignedBits, "Byte() called with %d unflushed bits pending", w.bitPos)
	}
	w.body = append(w.body, b)
	return nil
}

// Bytes appends b. Fails if the bit buffer is unaligned.
func (w *Writer) Bytes(b []byte) error {
	if w.bitPos != 0 {
		return w.fail(KindStructural, ErrMisalignedBits, "Bytes() called with %d unflushed bits pending", w.bitPos)
	}
	w.body = append(w.body, b...)
	return nil
}

// Bits writes the low n bits of value into the bit buffer, high-bit-first
// within each byte, flushing a full byte whenever 8 bits accumulate.
func (w *Writer) Bits(value uint32, n int) error {
	if n < 1 || n > 32 {
		return w.fail(KindResource, ErrBitWidth, "Bits(_, %d) outside [1,32]", n)
	}
	if n < 32 && value>>uint(n) != 0 {
		return w.fail(KindValueDomain, ErrOverflow, "Bits() value %d does not fit in %d bits", value, n)
	}
	for i := n - 1; i >= 0; i-- {
		bit := (value >> uint(i)) & 1
		w.bitBuf = (w.bitBuf << 1) | byte(bit)
		w.bitPos++
		if w.bitPos == 8 {
			w.body = append(w.body, w.bitBuf)
			w.bitBuf = 0
			w.bitPos = 0
		}
	}
	return nil
}

// RegisterPointer queues a deferred pointer: at Finish, pointee is
// appended after the main body (in registration order) and the
// placeholder bytes at placeholderOffset are overwritten with the
// absolute offset at which pointee ends up.
func (w *Writer) RegisterPointer(placeholderOffset int, placeholderCoder Coder, pointee []byte) {
	size, _ := placeholderCoder.Size()
	w.deferred = append(w.deferred, deferredPointer{
		placeholderOffset: placeholderOffset,
		placeholderSize:    size,
		placeholderCoder:   placeholderCoder,
		pointee:            pointee,
	})
}

// WriterMark captures a Writer's in-progress state for later Reset,
// letting a combinator like Match attempt a coder and roll back cleanly
// on failure. Since Writer only ever appends, rollback is a plain
// slice-length truncation.
type WriterMark struct {
	bodyLen     int
	deferredLen int
	bitBuf      byte
	bitPos      int
}

// Mark snapshots w's current state.
func (w *Writer) Mark() WriterMark {
	return WriterMark{bodyLen: len(w.body), deferredLen: len(w.deferred), bitBuf: w.bitBuf, bitPos: w.bitPos}
}

// Reset restores w to a previously captured WriterMark, discarding
// anything written since.
func (w *Writer) Reset(m WriterMark) {
	w.body = w.body[:m.bodyLen]
	w.deferred = w.deferred[:m.deferredLen]
	w.bitBuf = m.bitBuf
	w.bitPos = m.bitPos
	w.err = nil
}

// Finish concatenates the body, appends every deferred pointee in
// registration order, and patches each placeholder in place with the
// absolute offset where its pointee begins.
func (w *Writer) Finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.bitPos != 0 {
		return nil, w.fail(KindStructural, ErrMisalignedBits, "Finish() with %d unflushed bits pending", w.bitPos)
	}

	out := append(make([]byte, 0, len(w.body)), w.body...)
	for _, d := range w.deferred {
		targetOffset := len(out)
		patch := NewWriter()
		if err := d.placeholderCoder.EncodeStream(patch, targetOffset); err != nil {
			return nil, err
		}
		patched, err := patch.Finish()
		if err != nil {
			return nil, err
		}
		if len(patched) != d.placeholderSize {
			return nil, newError(KindStructural, nil, ErrLengthMismatch,
				"pointer placeholder coder produced %d bytes, expected fixed size %d", len(patched), d.placeholderSize)
		}
		copy(out[d.placeholderOffset:d.placeholderOffset+d.placeholderSize], patched)
		out = append(out, d.pointee...)
	}
	return out, nil
}
