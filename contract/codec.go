package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// Stored records use a compact deterministic binary layout: a version byte,
// then fixed-width integers big-endian, u128 amounts as 16 bytes, strings
// varuint-length-prefixed.

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter {
	w := &binWriter{}
	w.buf.WriteByte(codecVersion)
	return w
}

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeU128 emits the low 16 bytes of the amount big-endian. Amounts are
// validated to 128 bits on the way in, so the high half is always zero.
func (w *binWriter) writeU128(v *uint256.Int) {
	b := v.Bytes32()
	w.buf.Write(b[16:])
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

type binReader struct {
	data []byte
	pos  int
	err  error
}

var errShortRecord = errors.New("record truncated")

func newReader(data []byte) *binReader {
	r := &binReader{data: data}
	if v := r.readByte(); r.err == nil && v != codecVersion {
		r.err = errors.New("unknown record version")
	}
	return r
}

func (r *binReader) fail() {
	if r.err == nil {
		r.err = errShortRecord
	}
}

func (r *binReader) readByte() byte {
	if r.err != nil {
		return 0
	}
	if r.pos >= len(r.data) {
		r.fail()
		return 0
	}
	b := r.data[r.pos]
	r.pos++
	return b
}

func (r *binReader) readBool() bool {
	return r.readByte() == 1
}

func (r *binReader) readUint64() uint64 {
	if r.err != nil {
		return 0
	}
	if r.pos+8 > len(r.data) {
		r.fail()
		return 0
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v
}

func (r *binReader) readVarUint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		r.fail()
		return 0
	}
	r.pos += n
	return v
}

func (r *binReader) readU128() *uint256.Int {
	if r.err != nil {
		return new(uint256.Int)
	}
	if r.pos+16 > len(r.data) {
		r.fail()
		return new(uint256.Int)
	}
	v := new(uint256.Int).SetBytes(r.data[r.pos : r.pos+16])
	r.pos += 16
	return v
}

func (r *binReader) readString() string {
	n := r.readVarUint()
	if r.err != nil {
		return ""
	}
	if uint64(r.pos)+n > uint64(len(r.data)) {
		r.fail()
		return ""
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s
}

func (r *binReader) readAddress() sdk.Address {
	return sdk.Address(r.readString())
}

// -----------------------------------------------------------------------------
// Record Codecs
// -----------------------------------------------------------------------------

func encodeSale(s *Sale) []byte {
	w := newWriter()
	w.writeAddress(s.Admin)
	w.writeAddress(s.Owner)
	w.writeAddress(s.Token)
	w.writeAddress(s.Staking)
	w.writeU128(s.TokensToSell)
	w.writeU128(s.TokensSold)
	w.writeU128(s.TokensRaised)
	w.writeU128(s.TokenPriceInGear)
	w.writeU128(s.RegistrationFeeGear)
	w.writeU128(s.RegistrationFees)
	w.writeBool(bool(s.TokensDeposited))
	w.writeBool(bool(s.EarningsWithdrawn))
	w.writeBool(bool(s.LeftoverWithdrawn))
	w.writeBool(bool(s.IsCreated))
	w.writeBool(bool(s.GateClosed))
	return w.bytes()
}

func decodeSale(data []byte) (*Sale, error) {
	r := newReader(data)
	s := &Sale{
		Admin:               r.readAddress(),
		Owner:               r.readAddress(),
		Token:               r.readAddress(),
		Staking:             r.readAddress(),
		TokensToSell:        r.readU128(),
		TokensSold:          r.readU128(),
		TokensRaised:        r.readU128(),
		TokenPriceInGear:    r.readU128(),
		RegistrationFeeGear: r.readU128(),
		RegistrationFees:    r.readU128(),
	}
	s.TokensDeposited = latch(r.readBool())
	s.EarningsWithdrawn = latch(r.readBool())
	s.LeftoverWithdrawn = latch(r.readBool())
	s.IsCreated = latch(r.readBool())
	s.GateClosed = latch(r.readBool())
	return s, r.err
}

func encodeRound(start, end, generation uint64) []byte {
	w := newWriter()
	w.writeUint64(start)
	w.writeUint64(end)
	w.writeUint64(generation)
	return w.bytes()
}

func decodeRound(data []byte) (start, end, generation uint64, err error) {
	r := newReader(data)
	start = r.readUint64()
	end = r.readUint64()
	generation = r.readUint64()
	return start, end, generation, r.err
}

func encodeAllocation(cap *uint256.Int) []byte {
	w := newWriter()
	w.writeU128(cap)
	return w.bytes()
}

func decodeAllocation(data []byte) (*uint256.Int, error) {
	r := newReader(data)
	v := r.readU128()
	return v, r.err
}

func encodeParticipation(p *Participation) []byte {
	w := newWriter()
	w.writeU128(p.AmountBought)
	w.writeU128(p.AmountPaid)
	w.writeUint64(p.ParticipatedAt)
	w.writeBool(bool(p.Withdrawn))
	return w.bytes()
}

func decodeParticipation(data []byte) (*Participation, error) {
	r := newReader(data)
	p := &Participation{
		AmountBought:   r.readU128(),
		AmountPaid:     r.readU128(),
		ParticipatedAt: r.readUint64(),
	}
	p.Withdrawn = latch(r.readBool())
	return p, r.err
}
