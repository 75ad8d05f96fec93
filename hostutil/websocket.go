package hostutil

import "github.com/intuitivelabs/bytescase"

// WSExtension is the numeric form of a Sec-WebSocket-Extensions token.
type WSExtension uint

const (
	WSExtNone         WSExtension = 0
	WSExtPMsgDeflateF WSExtension = 1 << iota
	WSExtOtherF
)

// ResolveWSExtension maps a single Sec-WebSocket-Extensions token (the
// extension name, ignoring any ";param=value" suffix) to its flag.
func ResolveWSExtension(tok []byte) WSExtension {
	if len(tok) == 18 && bytescase.CmpEq(tok, []byte("permessage-deflate")) {
		return WSExtPMsgDeflateF
	}
	return WSExtOtherF
}

// WSExtensions resolves every token in a Sec-WebSocket-Extensions value,
// OR-ing their flags together.
func WSExtensions(v []byte) WSExtension {
	var flags WSExtension
	for _, tok := range ScanTokenList(v) {
		flags |= ResolveWSExtension(extensionName(tok))
	}
	return flags
}

// WSProtocol is the numeric form of a Sec-WebSocket-Protocol token.
type WSProtocol uint

const (
	WSProtoNone WSProtocol = 0
	WSProtoSIPF WSProtocol = 1 << iota
	WSProtoXMPPF
	WSProtoMSRPF
	WSProtoOtherF
)

// ResolveWSProtocol maps a single Sec-WebSocket-Protocol token to its
// flag value.
func ResolveWSProtocol(tok []byte) WSProtocol {
	switch len(tok) {
	case 3:
		if bytescase.CmpEq(tok, []byte("sip")) {
			return WSProtoSIPF
		}
	case 4:
		if bytescase.CmpEq(tok, []byte("xmpp")) {
			return WSProtoXMPPF
		} else if bytescase.CmpEq(tok, []byte("msrp")) {
			return WSProtoMSRPF
		}
	}
	return WSProtoOtherF
}

// WSProtocols resolves every token in a Sec-WebSocket-Protocol value,
// OR-ing their flags together.
func WSProtocols(v []byte) WSProtocol {
	var flags WSProtocol
	for _, tok := range ScanTokenList(v) {
		flags |= ResolveWSProtocol(tok)
	}
	return flags
}

// extensionName strips a ";param=value" parameter suffix from a
// Sec-WebSocket-Extensions token, leaving just the extension name.
func extensionName(tok []byte) []byte {
	for i, c := range tok {
		if c == ';' {
			return trimOWS(tok[:i])
		}
	}
	return tok
}
