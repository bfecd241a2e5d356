// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shareable

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// errMalformed is returned for any structurally invalid payload: truncated
// buffer, an implausible length prefix, or leftover trailing bytes. Callers
// surface it as a generic "bad link" error rather than echoing the detail.
var errMalformed = errors.New("malformed shareable payload")

type writer struct {
	buf bytes.Buffer
}

func (w *writer) bool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *writer) int32(v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])
}

func (w *writer) int64(v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	w.buf.Write(b[:])
}

func (w *writer) string(s string) {
	w.int32(int32(len(s)))
	w.buf.WriteString(s)
}

func (w *writer) int64Slice(s []int64) {
	w.int32(int32(len(s)))
	for _, v := range s {
		w.int64(v)
	}
}

func (w *writer) int32Slice(s []int32) {
	w.int32(int32(len(s)))
	for _, v := range s {
		w.int32(v)
	}
}

func (w *writer) stringSlice(s []string) {
	w.int32(int32(len(s)))
	for _, v := range s {
		w.string(v)
	}
}

func (w *writer) bytes() []byte {
	return w.buf.Bytes()
}

// reader consumes a writer's output in the same field order. Every method
// can return errMalformed; a maxLen guard on prefixed lengths keeps a
// corrupted length field from driving an oversized allocation.
type reader struct {
	r *bytes.Reader
}

func newReader(data []byte) *reader {
	return &reader{r: bytes.NewReader(data)}
}

const maxLen = 1 << 20

func (r *reader) bool() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return false, errMalformed
	}
	return b != 0, nil
}

func (r *reader) int32() (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, errMalformed
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func (r *reader) int64() (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, errMalformed
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func (r *reader) string() (string, error) {
	n, err := r.int32()
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > maxLen {
		return "", errMalformed
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", errMalformed
	}
	return string(buf), nil
}

func (r *reader) int64Slice() ([]int64, error) {
	n, err := r.int32()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > maxLen {
		return nil, errMalformed
	}
	out := make([]int64, n)
	for i := range out {
		if out[i], err = r.int64(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *reader) int32Slice() ([]int32, error) {
	n, err := r.int32()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > maxLen {
		return nil, errMalformed
	}
	out := make([]int32, n)
	for i := range out {
		if out[i], err = r.int32(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *reader) stringSlice() ([]string, error) {
	n, err := r.int32()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > maxLen {
		return nil, errMalformed
	}
	out := make([]string, n)
	for i := range out {
		if out[i], err = r.string(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *reader) done() bool {
	return r.r.Len() == 0
}
