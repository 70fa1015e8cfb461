package cursor

import (
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/internal/pool"
)

// Writer is an append-only byte sink. There is no seeking and no rewinds;
// every codec write goes through WriteByte/WriteBytes in declaration order.
type Writer interface {
	WriteByte(b byte) error
	WriteBytes(b []byte) error
}

// BufWriter is the canonical growable Writer, backed by a pooled
// internal/pool.ByteBuffer so repeated packet encodes reuse their backing
// array instead of allocating one per packet.
type BufWriter struct {
	buf *pool.ByteBuffer
}

var _ Writer = (*BufWriter)(nil)

// NewBufWriter returns a BufWriter backed by a buffer drawn from the
// default packet-sized pool. Call Release when done to return the buffer.
func NewBufWriter() *BufWriter {
	return &BufWriter{buf: pool.GetPacketBuffer()}
}

// NewChunkBufWriter returns a BufWriter backed by a buffer drawn from the
// larger chunk-sized pool, used when encoding a ChunkDataAndUpdateLight
// packet body.
func NewChunkBufWriter() *BufWriter {
	return &BufWriter{buf: pool.GetChunkBuffer()}
}

// WriteByte appends a single byte. It never fails; BufWriter grows on demand.
func (w *BufWriter) WriteByte(b byte) error {
	w.buf.MustWriteByte(b)
	return nil
}

// WriteBytes appends a slice. It never fails; BufWriter grows on demand.
func (w *BufWriter) WriteBytes(b []byte) error {
	w.buf.MustWrite(b)
	return nil
}

// Bytes returns the accumulated output. The returned slice aliases the
// writer's internal buffer and is only valid until the writer is reused
// or released.
func (w *BufWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *BufWriter) Len() int {
	return w.buf.Len()
}

// Release returns the backing buffer to the packet-sized pool (use
// ReleaseChunk for a NewChunkBufWriter). The writer must not be used
// afterwards.
func (w *BufWriter) Release() {
	pool.PutPacketBuffer(w.buf)
}

// ReleaseChunk returns a chunk-sized backing buffer to its pool.
func (w *BufWriter) ReleaseChunk() {
	pool.PutChunkBuffer(w.buf)
}

// BoundedWriter wraps a fixed-capacity byte slice and fails with errs.End
// once that capacity is exhausted instead of growing: callers who pre-size
// a buffer via a SIZE.max estimate can detect overrun instead of silently
// reallocating.
type BoundedWriter struct {
	buf []byte
	pos int
}

var _ Writer = (*BoundedWriter)(nil)

// NewBoundedWriter wraps buf (used from index 0) as a fixed-capacity sink.
func NewBoundedWriter(buf []byte) *BoundedWriter {
	return &BoundedWriter{buf: buf}
}

func (w *BoundedWriter) WriteByte(b byte) error {
	if w.pos >= len(w.buf) {
		return errs.End
	}
	w.buf[w.pos] = b
	w.pos++

	return nil
}

func (w *BoundedWriter) WriteBytes(b []byte) error {
	if len(w.buf)-w.pos < len(b) {
		return errs.End
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)

	return nil
}

// Bytes returns the portion of the backing buffer written so far.
func (w *BoundedWriter) Bytes() []byte {
	return w.buf[:w.pos]
}
