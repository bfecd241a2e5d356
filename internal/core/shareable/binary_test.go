// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shareable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestWriterReader_RoundTripsEveryFieldKind checks that every writer method
is recovered bit for bit by its matching reader method, in field order.
*/
func TestWriterReader_RoundTripsEveryFieldKind(t *testing.T) {
	w := &writer{}
	w.bool(true)
	w.int32(-7)
	w.int64(1 << 40)
	w.string("amiri")
	w.int64Slice([]int64{1, 2, 3})
	w.int32Slice([]int32{4, 5})
	w.stringSlice([]string{"a", "bc"})

	r := newReader(w.bytes())

	b, err := r.bool()
	require.NoError(t, err)
	assert.True(t, b)

	i32, err := r.int32()
	require.NoError(t, err)
	assert.EqualValues(t, -7, i32)

	i64, err := r.int64()
	require.NoError(t, err)
	assert.EqualValues(t, 1<<40, i64)

	s, err := r.string()
	require.NoError(t, err)
	assert.Equal(t, "amiri", s)

	i64s, err := r.int64Slice()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, i64s)

	i32s, err := r.int32Slice()
	require.NoError(t, err)
	assert.Equal(t, []int32{4, 5}, i32s)

	ss, err := r.stringSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bc"}, ss)

	assert.True(t, r.done())
}

/*
TestReader_TruncatedBufferReturnsMalformed checks that reading an int32
from a two-byte buffer fails with errMalformed rather than panicking when
the buffer runs out mid-field.
*/
func TestReader_TruncatedBufferReturnsMalformed(t *testing.T) {
	r := newReader([]byte{0, 0})
	_, err := r.int32()
	assert.ErrorIs(t, err, errMalformed)
}

/*
TestReader_OversizedLengthPrefixRejected checks that a length prefix beyond
maxLen is rejected before any allocation is attempted, guarding against a
corrupted or hostile length field.
*/
func TestReader_OversizedLengthPrefixRejected(t *testing.T) {
	w := &writer{}
	w.int32(maxLen + 1)
	r := newReader(w.bytes())

	_, err := r.string()
	assert.ErrorIs(t, err, errMalformed)
}

/*
TestReader_NegativeLengthPrefixRejected checks that a negative length
prefix (the high bit set) is rejected rather than underflowing into a huge
unsigned allocation size.
*/
func TestReader_NegativeLengthPrefixRejected(t *testing.T) {
	w := &writer{}
	w.int32(-1)
	r := newReader(w.bytes())

	_, err := r.int64Slice()
	assert.ErrorIs(t, err, errMalformed)
}

/*
TestReader_Done_FalseWithTrailingBytes checks that done() detects leftover
bytes after every expected field has been consumed.
*/
func TestReader_Done_FalseWithTrailingBytes(t *testing.T) {
	w := &writer{}
	w.bool(true)
	w.bool(false)
	r := newReader(w.bytes())

	_, err := r.bool()
	require.NoError(t, err)
	assert.False(t, r.done())
}
