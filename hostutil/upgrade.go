package hostutil

import "github.com/intuitivelabs/bytescase"

// UpgradeProto is the numeric form of an Upgrade header protocol token.
type UpgradeProto uint

// See https://www.iana.org/assignments/http-upgrade-tokens/http-upgrade-tokens.xhtml
const (
	UPNone   UpgradeProto = 0
	UPWSockF UpgradeProto = 1 << iota
	UPHTTP2F
	UPOtherF
)

// ResolveUpgradeProto maps a single Upgrade protocol token to its flag
// value.
func ResolveUpgradeProto(tok []byte) UpgradeProto {
	switch len(tok) {
	case 3:
		if bytescase.CmpEq(tok, []byte("h2c")) {
			return UPHTTP2F
		}
	case 8:
		if bytescase.CmpEq(tok, []byte("http/2.0")) {
			return UPHTTP2F
		}
	case 9:
		if bytescase.CmpEq(tok, []byte("websocket")) {
			return UPWSockF
		}
	}
	return UPOtherF
}
