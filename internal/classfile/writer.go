package classfile

import (
	"bytes"
	"encoding/binary"

	"fortio.org/safecast"

	"diec/internal/diag"
)

// Writer accumulates big-endian class file data.
type Writer struct {
	buf bytes.Buffer
}

func (w *Writer) U1(v uint8) { w.buf.WriteByte(v) }

func (w *Writer) U2(v uint16) {
	w.buf.Write(binary.BigEndian.AppendUint16(nil, v))
}

func (w *Writer) U4(v uint32) {
	w.buf.Write(binary.BigEndian.AppendUint32(nil, v))
}

func (w *Writer) U8(v uint64) {
	w.buf.Write(binary.BigEndian.AppendUint64(nil, v))
}

func (w *Writer) Raw(b []byte) { w.buf.Write(b) }

// Len2 writes n as a u2 count.
func (w *Writer) Len2(n int, what string) {
	v, err := safecast.Conv[uint16](n)
	if err != nil {
		panic(outOfRange(what, n, err))
	}
	w.U2(v)
}

// Len4 writes n as a u4 length.
func (w *Writer) Len4(n int, what string) {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(outOfRange(what, n, err))
	}
	w.U4(v)
}

func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) Len() int { return w.buf.Len() }

func outOfRange(what string, n int, err error) *diag.Error {
	return diag.Errorf(diag.FmtValueOutOfRange, 0, "%s %d does not fit: %v", what, n, err)
}

// Catch converts a format-invariant panic into an error stored in *errp.
// Other panics propagate.
//
//	defer classfile.Catch(&err)
func Catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if de, ok := r.(*diag.Error); ok && de.Code.Category() == diag.CategoryFormat {
		*errp = de
		return
	}
	panic(r)
}

func invariant(code diag.Code, format string, args ...any) {
	panic(diag.Errorf(code, 0, format, args...))
}
