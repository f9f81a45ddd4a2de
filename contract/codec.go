package contract

import (
	"bytes"
	"encoding/binary"

	"github.com/holiman/uint256"

	"grantvault/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAmount stores the full 256-bit big-endian representation so decoding
// needs no length bookkeeping.
func (w *binWriter) writeAmount(v *uint256.Int) {
	b := v.Bytes32()
	w.buf.Write(b[:])
}

// writeAddress canonicalizes the address before writing, so later parsing is easy.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

// writeAsset just dumps the ticker string, nothing fancy but consistent.
func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(AssetToString(a))
}

type binReader struct {
	data []byte
	off  int
	ok   bool
}

// newReader wraps a stored blob; ok flips to false on any malformed read.
func newReader(data []byte) *binReader { return &binReader{data: data, ok: true} }

func (r *binReader) take(n int) []byte {
	if !r.ok || r.off+n > len(r.data) {
		r.ok = false
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *binReader) readUint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

func (r *binReader) readInt64() int64 {
	return int64(r.readUint64())
}

func (r *binReader) readVarUint() uint64 {
	if !r.ok {
		return 0
	}
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		r.ok = false
		return 0
	}
	r.off += n
	return v
}

func (r *binReader) readString() string {
	n := r.readVarUint()
	b := r.take(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}

func (r *binReader) readAmount() *uint256.Int {
	b := r.take(32)
	if b == nil {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).SetBytes(b)
}

func (r *binReader) readAddress() sdk.Address {
	return AddressFromString(r.readString())
}

func (r *binReader) readAsset() sdk.Asset {
	return AssetFromString(r.readString())
}

// -----------------------------------------------------------------------------
// Grant Record Encoding
// -----------------------------------------------------------------------------

// encodeGrant serializes a Grant into the compact binary blob stored in kv.
func encodeGrant(g *Grant) string {
	w := newWriter()
	w.writeUint64(g.ID)
	w.writeString(g.Name)
	w.writeString(g.Purpose)
	w.writeAsset(g.Token)
	w.writeAddress(g.Recipient)
	w.writeAddress(g.Creator)
	w.writeAmount(g.Amount)
	w.writeInt64(g.Start)
	w.writeInt64(g.End)
	return string(w.bytes())
}

// decodeGrant rebuilds a Grant from its stored blob; nil on corrupt data.
func decodeGrant(data string) *Grant {
	r := newReader([]byte(data))
	g := &Grant{
		ID:        r.readUint64(),
		Name:      r.readString(),
		Purpose:   r.readString(),
		Token:     r.readAsset(),
		Recipient: r.readAddress(),
		Creator:   r.readAddress(),
		Amount:    r.readAmount(),
		Start:     r.readInt64(),
		End:       r.readInt64(),
	}
	if !r.ok {
		return nil
	}
	return g
}
