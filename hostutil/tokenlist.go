package hostutil

// ScanTokenList splits an already-complete header value (reassembled by
// the host from its OnHeaderValue slices by the time OnHeaderValueDone
// fires) into its comma-separated tokens, trimming surrounding OWS from
// each one. Unlike the teacher's ParseTokenLst, this never needs to
// resume across calls: the host passes it the whole value at once, so
// there is no partial-buffer case to carry state for. It does not understand
// token parameters (";name=value"); a parameter suffix is returned as
// part of the token verbatim.
func ScanTokenList(v []byte) [][]byte {
	var toks [][]byte
	start := -1
	for i := 0; i <= len(v); i++ {
		atEnd := i == len(v)
		c := byte(0)
		if !atEnd {
			c = v[i]
		}
		switch {
		case !atEnd && c == ',':
			if start >= 0 {
				toks = append(toks, trimOWS(v[start:i]))
				start = -1
			}
		case atEnd || c == ' ' || c == '\t':
			if atEnd && start >= 0 {
				toks = append(toks, trimOWS(v[start:i]))
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	return toks
}

func trimOWS(v []byte) []byte {
	i, j := 0, len(v)
	for i < j && (v[i] == ' ' || v[i] == '\t') {
		i++
	}
	for j > i && (v[j-1] == ' ' || v[j-1] == '\t') {
		j--
	}
	return v[i:j]
}
