package hostutil

import "github.com/intuitivelabs/bytescase"

// TransferCoding is a bitset of the transfer-coding tokens recognized in
// a Transfer-Encoding (or TE) header value.
type TransferCoding uint

// See https://www.rfc-editor.org/rfc/rfc7230#section-4 and the IANA
// transfer-coding registry.
const (
	TCNone     TransferCoding = 0
	TCChunkedF TransferCoding = 1 << iota
	TCCompressF
	TCDeflateF
	TCGzipF
	TCIdentityF
	TCTrailersF  // not an actual coding, only ever seen in a TE header
	TCXCompressF // obsolete
	TCXGzipF     // obsolete
	TCOtherF     // unknown/other
)

// ResolveTransferCoding maps a single transfer-coding token (already
// split out of a comma-separated list, e.g. by ScanTokenList) to its
// flag value.
func ResolveTransferCoding(tok []byte) TransferCoding {
	switch len(tok) {
	case 4:
		if bytescase.CmpEq(tok, []byte("gzip")) {
			return TCGzipF
		}
	case 6:
		if bytescase.CmpEq(tok, []byte("x-gzip")) {
			return TCXGzipF
		}
	case 7:
		if bytescase.CmpEq(tok, []byte("chunked")) {
			return TCChunkedF
		} else if bytescase.CmpEq(tok, []byte("deflate")) {
			return TCDeflateF
		}
	case 8:
		if bytescase.CmpEq(tok, []byte("compress")) {
			return TCCompressF
		} else if bytescase.CmpEq(tok, []byte("identity")) {
			return TCIdentityF
		} else if bytescase.CmpEq(tok, []byte("trailers")) {
			return TCTrailersF
		}
	case 10:
		if bytescase.CmpEq(tok, []byte("x-compress")) {
			return TCXCompressF
		}
	}
	return TCOtherF
}
