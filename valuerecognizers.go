package httpwire

// hvState is the shared type for the two header-value sub-recognizer
// state spaces (close-token detection and chunked-token detection).
// The two state spaces are disjoint enums; a hvState is only ever
// interpreted in the context of the sub-recognizer that produced it.
type hvState uint8

// close-token sub-recognizer states: scans the comma-separated
// Connection header value looking for a bare "close" token.
const (
	closeNoState hvState = iota // start of a token (after a comma + OWS)
	closeWait                   // mismatched; skip to the next comma
	closeC
	closeCL
	closeCLO
	closeCLOS
	closeCLOSE
	closeConfirmed // sticky: "close" token found
)

// closeStep advances the close-token sub-recognizer by one byte.
func closeStep(state hvState, c byte) hvState {
	switch state {
	case closeNoState:
		switch c {
		case 'C', 'c':
			return closeC
		case ',', ' ', '\t':
			return closeNoState
		}
		return closeWait
	case closeWait:
		if c == ',' {
			return closeNoState
		}
		return closeWait
	case closeC:
		if c == 'L' || c == 'l' {
			return closeCL
		}
		return closeWait
	case closeCL:
		if c == 'O' || c == 'o' {
			return closeCLO
		}
		return closeWait
	case closeCLO:
		if c == 'S' || c == 's' {
			return closeCLOS
		}
		return closeWait
	case closeCLOS:
		if c == 'E' || c == 'e' {
			return closeCLOSE
		}
		return closeWait
	case closeCLOSE:
		// word boundary: SP, HTAB, CR or comma confirms a complete token
		switch c {
		case ' ', '\t', '\r', ',':
			return closeConfirmed
		}
		return closeWait
	case closeConfirmed:
		return closeConfirmed
	}
	return closeNoState
}

// chunked-token sub-recognizer states: scans the comma-separated
// Transfer-Encoding header value looking for a "chunked" token that
// must be the last coding in the list.
const (
	chunkedWait hvState = iota // waiting for the comma before the next coding
	chunkedTrim                // absorbing OWS right after that comma
	chunkedNoState              // start of the first token (no comma seen yet)
	chunkedC
	chunkedCH
	chunkedCHU
	chunkedCHUN
	chunkedCHUNK
	chunkedCHUNKE
	chunkedCHUNKED
	chunkedConfirmed // sticky: "chunked" was the last coding
	chunkedIllegal   // sticky: another coding followed "chunked"
)

// chunkedStep advances the chunked-token sub-recognizer by one byte.
func chunkedStep(state hvState, c byte) hvState {
	switch state {
	case chunkedIllegal:
		return chunkedIllegal
	case chunkedConfirmed:
		return chunkedConfirmed
	case chunkedWait:
		if c == ',' {
			return chunkedTrim
		}
		return chunkedWait
	case chunkedTrim:
		switch c {
		case ' ', '\t':
			return chunkedTrim
		case 'C', 'c':
			return chunkedC
		}
		return chunkedWait
	case chunkedNoState:
		if c == 'C' || c == 'c' {
			return chunkedC
		}
		return chunkedWait
	case chunkedC:
		if c == 'H' || c == 'h' {
			return chunkedCH
		}
		return chunkedWait
	case chunkedCH:
		if c == 'U' || c == 'u' {
			return chunkedCHU
		}
		return chunkedWait
	case chunkedCHU:
		if c == 'N' || c == 'n' {
			return chunkedCHUN
		}
		return chunkedWait
	case chunkedCHUN:
		if c == 'K' || c == 'k' {
			return chunkedCHUNK
		}
		return chunkedWait
	case chunkedCHUNK:
		if c == 'E' || c == 'e' {
			return chunkedCHUNKE
		}
		return chunkedWait
	case chunkedCHUNKE:
		if c == 'D' || c == 'd' {
			return chunkedCHUNKED
		}
		return chunkedWait
	case chunkedCHUNKED:
		switch c {
		case ' ', '\t':
			return chunkedCHUNKED
		case '\r':
			return chunkedConfirmed
		case ',':
			// another coding follows "chunked" -> illegal order
			return chunkedIllegal
		}
		return chunkedWait
	}
	return chunkedWait
}
