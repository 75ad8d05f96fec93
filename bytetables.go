package httpwire

// Byte-class lookup tables used by the state machine instead of
// per-byte branches in the hot path. Each table is a fixed 256-entry
// array indexed directly by the input byte.

// token reports whether c is a valid RFC 7230 tchar (usable in header
// names and request methods).
var token [256]bool

// vchar reports whether c is a valid header-value / reason-phrase
// byte: %x21-7E, HTAB, SP, and (unless built with the strict build
// tag) bytes 0x80-0xFF.
var vchar [256]bool

// urichar reports whether c is allowed unescaped inside an origin-form
// request URI (unreserved + reserved, minus '%' and SP).
var urichar [256]bool

// hexchar reports whether c is an ASCII hex digit.
var hexchar [256]bool

func init() {
	for c := 0; c < 256; c++ {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			token[c] = true
		}
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		token[c] = true
	}

	vchar['\t'] = true
	vchar[' '] = true
	for c := 0x21; c <= 0x7e; c++ {
		vchar[c] = true
	}
	if !strictVChar {
		for c := 0x80; c <= 0xff; c++ {
			vchar[c] = true
		}
	}

	for _, c := range []byte("-._~:/?#[]@!$&'()*+,;=") {
		urichar[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		urichar[byte(c)] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		urichar[byte(c)] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		urichar[byte(c)] = true
	}

	for c := '0'; c <= '9'; c++ {
		hexchar[byte(c)] = true
	}
	for c := 'A'; c <= 'F'; c++ {
		hexchar[byte(c)] = true
	}
	for c := 'a'; c <= 'f'; c++ {
		hexchar[byte(c)] = true
	}
}
