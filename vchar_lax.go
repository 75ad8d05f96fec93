//go:build !strict

package httpwire

// strictVChar mirrors the CORE_HTTP_STRICT compile-time option: when
// false (the default), bytes 0x80-0xFF are accepted as VCHAR in header
// values and reason phrases. Build with -tags strict to restrict VCHAR
// to 7-bit, matching RFC 7230 strictly.
const strictVChar = false
