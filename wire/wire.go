// Package wire offers (de)serialization APIs for sending a quACK
// accumulator's power sums across a network connection between a sender
// and a receiver. Its encodings are wire formats, not a persisted on-disk format —
// this module carries no disk-persistence layer at all (spec.md's
// Non-goals explicitly rule that out) — this is the wire exchange that
// powers the reconciliation protocol itself.
//
// Two codecs are offered: MarshalCBOR/UnmarshalCBOR (self-describing,
// convenient for debugging and cross-version tolerance) and
// MarshalCompact/UnmarshalCompact (fixed-width bit-packed, smaller on the
// wire, modeled on original_source/src/power_sum.rs's raw serialize/
// deserialize methods but without their unsafe byte-level pointer casts).
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"

	"github.com/ygina/quack/field"
)

// Quack32Wire is the CBOR-friendly, self-describing representation of a
// 32-bit accumulator's power sums, count, and last inserted value.
type Quack32Wire struct {
	Threshold int      `cbor:"threshold"`
	Count     int      `cbor:"count"`
	LastValue uint32   `cbor:"last_value"`
	HasLast   bool     `cbor:"has_last"`
	Sums      []uint32 `cbor:"sums"`
}

// MarshalCBOR encodes sums (canonical field elements), count, and
// last-value into a self-describing CBOR buffer.
func MarshalCBOR(threshold, count int, lastValue uint32, hasLast bool, sums []field.Element32) ([]byte, error) {
	raw := make([]uint32, len(sums))
	for i, s := range sums {
		raw[i] = s.Uint32()
	}
	w := Quack32Wire{
		Threshold: threshold,
		Count:     count,
		LastValue: lastValue,
		HasLast:   hasLast,
		Sums:      raw,
	}
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(w)
}

// UnmarshalCBOR decodes a buffer produced by MarshalCBOR.
func UnmarshalCBOR(buf []byte) (w Quack32Wire, sums []field.Element32, err error) {
	if err = cbor.Unmarshal(buf, &w); err != nil {
		return Quack32Wire{}, nil, err
	}
	sums = make([]field.Element32, len(w.Sums))
	for i, s := range w.Sums {
		sums[i] = field.FromUint32(s)
	}
	return w, sums, nil
}

// compactHeaderLen is the fixed-width header preceding the power sums in
// the compact encoding: count (4 bytes), has-last flag (1 byte), last
// value (4 bytes).
const compactHeaderLen = 4 + 1 + 4

// MarshalCompact encodes the same fields as MarshalCBOR into a fixed-width
// layout: a small header followed by each power sum packed into exactly
// 32 bits via bitio, mirroring the wire-size-proportional-to-T design goal
// called out in the spec's system overview.
func MarshalCompact(count int, lastValue uint32, hasLast bool, sums []field.Element32) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, int32(count)); err != nil {
		return nil, err
	}
	flag := byte(0)
	if hasLast {
		flag = 1
	}
	if err := buf.WriteByte(flag); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, lastValue); err != nil {
		return nil, err
	}

	w := bitio.NewWriter(&buf)
	for _, s := range sums {
		if err := w.WriteBits(uint64(s.Uint32()), 32); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalCompact decodes a buffer produced by MarshalCompact into
// exactly threshold power sums.
func UnmarshalCompact(buf []byte, threshold int) (count int, lastValue uint32, hasLast bool, sums []field.Element32, err error) {
	if len(buf) < compactHeaderLen {
		return 0, 0, false, nil, fmt.Errorf("quack/wire: compact buffer too short: %d bytes", len(buf))
	}
	r := bytes.NewReader(buf)
	var count32 int32
	if err = binary.Read(r, binary.BigEndian, &count32); err != nil {
		return 0, 0, false, nil, err
	}
	flag, err := r.ReadByte()
	if err != nil {
		return 0, 0, false, nil, err
	}
	if err = binary.Read(r, binary.BigEndian, &lastValue); err != nil {
		return 0, 0, false, nil, err
	}

	br := bitio.NewReader(r)
	sums = make([]field.Element32, threshold)
	for i := range sums {
		v, err := br.ReadBits(32)
		if err != nil {
			return 0, 0, false, nil, err
		}
		sums[i] = field.FromUint32(uint32(v))
	}
	return int(count32), lastValue, flag != 0, sums, nil
}
