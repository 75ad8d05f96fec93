// Package hostutil gives a host built on top of httpwire a set of small,
// non-resumable helpers for interpreting header values the parser has
// already handed it complete, by the time OnHeaderValueDone fires.
// Nothing here is imported by the core package: httpwire only ever
// hands out byte slices and leaves deciding what they mean to the host.
package hostutil

import (
	"github.com/intuitivelabs/bytescase"
)

// Method is the numeric form of an HTTP request method token.
type Method uint8

const (
	MUnknown Method = iota
	MGet
	MHead
	MPost
	MPut
	MDelete
	MConnect
	MOptions
	MTrace
	MPatch
	MOther // recognized token shape, but not one of the above
)

var methodNames = [MOther + 1][]byte{
	MUnknown: []byte(""),
	MGet:     []byte("GET"),
	MHead:    []byte("HEAD"),
	MPost:    []byte("POST"),
	MPut:     []byte("PUT"),
	MDelete:  []byte("DELETE"),
	MConnect: []byte("CONNECT"),
	MOptions: []byte("OPTIONS"),
	MTrace:   []byte("TRACE"),
	MPatch:   []byte("PATCH"),
	MOther:   []byte("OTHER"),
}

// String returns the canonical ASCII name for m.
func (m Method) String() string {
	if m > MOther {
		return string(methodNames[MUnknown])
	}
	return string(methodNames[m])
}

// magic values: the bucket index is built from the low mthBitsFChar bits
// of the lowercased first byte and the low mthBitsLen bits of the length.
// A bucket can hold more than one method (GET and OPTIONS share one, as
// do HEAD and POST); ResolveMethod compares every entry in the bucket.
const (
	mthBitsLen   uint = 2
	mthBitsFChar uint = 3
)

type methodEntry struct {
	name []byte
	m    Method
}

var methodLookup [1 << (mthBitsLen + mthBitsFChar)][]methodEntry

func hashMethodName(n []byte) int {
	const (
		mC = (1 << mthBitsFChar) - 1
		mL = (1 << mthBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << mthBitsFChar)
}

func init() {
	for m := MUnknown + 1; m < MOther; m++ {
		h := hashMethodName(methodNames[m])
		methodLookup[h] = append(methodLookup[h], methodEntry{methodNames[m], m})
	}
}

// ResolveMethod maps a method token, as handed to OnMethodDone, to its
// numeric form, comparing ASCII case-insensitively. Unrecognized tokens
// resolve to MOther, never MUnknown:
// MUnknown is reserved for a Method zero value that was never resolved.
func ResolveMethod(tok []byte) Method {
	if len(tok) == 0 {
		return MUnknown
	}
	for _, e := range methodLookup[hashMethodName(tok)] {
		if len(tok) == len(e.name) && bytescase.CmpEq(tok, e.name) {
			return e.m
		}
	}
	return MOther
}
