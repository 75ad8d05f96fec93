package httpwire

// Feed consumes buf, driving the state machine forward one byte at a
// time and invoking cb's callbacks as message pieces are recognized.
// Feed itself allocates nothing and retains nothing from buf after it
// returns; every callback slice points directly into buf and is only
// valid for the duration of that call.
//
// Return value:
//
//	 0  buf was fully consumed with no terminal event; call Feed again
//	    with the next chunk.
//	>0  parsing stopped with N bytes of buf left over: either the
//	    parser reached end-of-message (N is the number of bytes past
//	    the end of the message, e.g. the start of a pipelined second
//	    message), or a "done" callback returned CtrlReturn (N is the
//	    number of bytes strictly after the byte that triggered the
//	    callback, the host's resume point), or a "done" callback
//	    returned any other non-CtrlContinue value (N is the fixed
//	    sentinel 1, meaning "paused").
//	<0  a grammar or framing error was detected; OnError was invoked
//	    and p's state is now undefined until Reset.
func Feed(p *Parser, buf []byte, cb *Callbacks) int {
	if cb == nil {
		cb = &Callbacks{}
	}
	end := len(buf)
	var mark int

	i := 0
	for ; i < end; i++ {
		c := buf[i]

	again:
		switch p.state {

		// --- DETECT-mode disambiguation -----------------------------

		case sNoState:
			mark = i
			switch {
			case c == 'H':
				p.state = sUndH
			case token[c]:
				p.RequestType = ModeRequest
				p.state = sMethodChar
			default:
				goto grammarError
			}

		case sUndH:
			switch {
			case c == 'T':
				p.state = sUndHT
			case token[c]:
				p.RequestType = ModeRequest
				p.state = sMethodChar
			default:
				goto grammarError
			}

		case sUndHT:
			switch {
			case c == 'T':
				p.state = sUndHTT
			case token[c]:
				p.RequestType = ModeRequest
				p.state = sMethodChar
			default:
				goto grammarError
			}

		case sUndHTT:
			switch {
			case c == 'P':
				p.state = sUndHTTP
			case token[c]:
				p.RequestType = ModeRequest
				p.state = sMethodChar
			default:
				goto grammarError
			}

		case sUndHTTP:
			switch {
			case c == '/':
				p.RequestType = ModeResponse
				p.state = sResponseHTTPMajorV
			case token[c]:
				p.RequestType = ModeRequest
				p.state = sMethodChar
			default:
				goto grammarError
			}

		// --- request start-line --------------------------------------

		case sRequestRequired:
			mark = i
			if !token[c] {
				goto grammarError
			}
			p.RequestType = ModeRequest
			p.state = sMethodChar

		case sMethodChar:
			switch {
			case token[c]:
				// stay, keep accumulating
			case c == ' ':
				cb.method(p, buf[mark:i])
				p.state = sRequestURI
				if ctrl := cb.methodDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sRequestURI:
			mark = i
			switch {
			case c == '/' || c == 'h' || c == 'H':
				p.state = sRequestURIChar
			case c == '*':
				p.state = sRequestURIAsterisk
			default:
				goto grammarError
			}

		case sRequestURIChar:
			switch {
			case urichar[c]:
				// stay
			case c == '%':
				p.state = sRequestURI1stHex
			case c == ' ':
				cb.requestURI(p, buf[mark:i])
				p.state = sRequestRequireVersion
				if ctrl := cb.requestURIDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sRequestURI1stHex:
			if !hexchar[c] {
				goto grammarError
			}
			p.state = sRequestURI2ndHex

		case sRequestURI2ndHex:
			if !hexchar[c] {
				goto grammarError
			}
			p.state = sRequestURIChar

		case sRequestURIAsterisk:
			if c != ' ' {
				goto grammarError
			}
			p.state = sRequestRequireVersion

		case sRequestRequireVersion:
			if c != 'H' {
				goto grammarError
			}
			p.state = sRequestH

		case sRequestH:
			if c != 'T' {
				goto grammarError
			}
			p.state = sRequestHT

		case sRequestHT:
			if c != 'T' {
				goto grammarError
			}
			p.state = sRequestHTT

		case sRequestHTT:
			if c != 'P' {
				goto grammarError
			}
			p.state = sRequestHTTP

		case sRequestHTTP:
			if c != '/' {
				goto grammarError
			}
			p.state = sRequestHTTPMajorV

		case sRequestHTTPMajorV:
			if c < '0' || c > '9' {
				goto grammarError
			}
			p.MajorVersion = c - '0'
			p.state = sRequestHTTPDot

		case sRequestHTTPDot:
			if c != '.' {
				goto grammarError
			}
			p.state = sRequestHTTPMinorV

		case sRequestHTTPMinorV:
			if c < '0' || c > '9' {
				goto grammarError
			}
			p.MinorVersion = c - '0'
			p.state = sRequestEOL

		case sRequestEOL:
			if c != '\r' {
				goto grammarError
			}
			p.state = sRequestCRLF

		case sRequestCRLF:
			if c != '\n' {
				goto grammarError
			}
			p.state = sHeaderName
			if ctrl := cb.statusLineDone(p); ctrl != CtrlContinue {
				return earlyReturn(ctrl, end, i)
			}

		// --- response start-line -------------------------------------

		case sResponseRequired:
			if c != 'H' {
				goto grammarError
			}
			p.state = sResponseH

		case sResponseH:
			if c != 'T' {
				goto grammarError
			}
			p.state = sResponseHT

		case sResponseHT:
			if c != 'T' {
				goto grammarError
			}
			p.state = sResponseHTT

		case sResponseHTT:
			if c != 'P' {
				goto grammarError
			}
			p.state = sResponseHTTP

		case sResponseHTTP:
			if c != '/' {
				goto grammarError
			}
			p.state = sResponseHTTPMajorV

		case sResponseHTTPMajorV:
			if c < '0' || c > '9' {
				goto grammarError
			}
			p.MajorVersion = c - '0'
			p.state = sResponseHTTPDot

		case sResponseHTTPDot:
			if c != '.' {
				goto grammarError
			}
			p.state = sResponseHTTPMinorV

		case sResponseHTTPMinorV:
			if c < '0' || c > '9' {
				goto grammarError
			}
			p.MinorVersion = c - '0'
			p.state = sStatusRequired

		case sStatusRequired:
			if c != ' ' {
				goto grammarError
			}
			p.state = sStatus1st

		case sStatus1st:
			if c < '1' || c > '9' {
				goto grammarError
			}
			p.StatusCode = uint16(c-'0') * 100
			p.state = sStatus2nd

		case sStatus2nd:
			if c < '0' || c > '9' {
				goto grammarError
			}
			p.StatusCode += uint16(c-'0') * 10
			p.state = sStatus3rd

		case sStatus3rd:
			if c < '0' || c > '9' {
				goto grammarError
			}
			p.StatusCode += uint16(c - '0')
			p.state = sResponseReason

		case sResponseReason:
			switch {
			case vchar[c]:
				// stay
			case c == '\r':
				p.state = sResponseEOL
			default:
				goto grammarError
			}

		case sResponseEOL:
			if c != '\n' {
				goto grammarError
			}
			p.state = sHeaderName
			if ctrl := cb.statusLineDone(p); ctrl != CtrlContinue {
				return earlyReturn(ctrl, end, i)
			}

		// --- headers ---------------------------------------------------

		case sHeaderName:
			mark = i
			switch {
			case token[c]:
				if p.hnstate = lookupHeaderName(hnNoState, c); p.hnstate == hnNoState {
					p.state = sHeaderNameChar
				} else {
					p.state = sHeaderNameCharCheck
				}
			case c == '\r':
				// no (more) headers
				p.state = sHeaderEOH
			default:
				goto grammarError
			}

		case sHeaderNameChar:
			switch {
			case token[c]:
				// stay
			case c == ':':
				cb.headerName(p, buf[mark:i])
				p.state = sHeaderValue
				if ctrl := cb.headerNameDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sHeaderNameCharCheck:
			switch {
			case token[c]:
				if p.hnstate = lookupHeaderName(p.hnstate, c); p.hnstate == hnNoState {
					p.state = sHeaderNameChar
				}
			case c == ':':
				cb.headerName(p, buf[mark:i])
				p.state = sHeaderValue
				if ctrl := cb.headerNameDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sHeaderValue:
			switch {
			case c == ' ', c == '\t':
				// trim leading OWS
			case c == '\r':
				// empty value
				mark = i
				cb.headerValue(p, buf[mark:i])
				p.state = sHeaderEOL
				if ctrl := cb.headerValueDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			case vchar[c]:
				mark = i
				switch p.hnstate {
				case hnConnection:
					p.hvstate = closeNoState
					p.state = sHeaderValueLFClose
					goto again
				case hnHost:
					p.state = sHeaderValueChar
					p.HaveHostHeader = true
					goto again
				case hnTransferEncoding:
					p.state = sHeaderValueLFChunked
					goto again
				case hnContentLength:
					if p.ContentLength != 0 {
						// a prior Content-Length already set it: this
						// duplicate is accumulated as plain text and
						// flagged as an ambiguity at end-of-headers.
						p.dupContentLength = true
						p.state = sHeaderValueChar
						goto again
					}
					p.state = sHeaderValueContentLength
					goto again
				case hnUpgrade:
					p.state = sHeaderValueChar
					p.IsUpgrade = true
					goto again
				default:
					p.state = sHeaderValueChar
					goto again
				}
			default:
				goto grammarError
			}

		case sHeaderValueChar:
			switch {
			case vchar[c]:
				// stay
			case c == '\r':
				cb.headerValue(p, buf[mark:i])
				p.state = sHeaderEOL
				if ctrl := cb.headerValueDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sHeaderValueLFClose:
			switch {
			case vchar[c]:
				p.hvstate = closeStep(p.hvstate, c)
			case c == '\r':
				p.hvstate = closeStep(p.hvstate, c)
				if p.hvstate == closeConfirmed {
					p.ShouldClose = true
				}
				cb.headerValue(p, buf[mark:i])
				p.state = sHeaderEOL
				if ctrl := cb.headerValueDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sHeaderValueLFChunked:
			if !vchar[c] {
				goto grammarError
			}
			p.hvstate = chunkedStep(chunkedNoState, c)
			p.state = sHeaderValueLFChunkedChar

		case sHeaderValueLFChunkedChar:
			switch {
			case vchar[c]:
				p.hvstate = chunkedStep(p.hvstate, c)
			case c == '\r':
				p.hvstate = chunkedStep(p.hvstate, c)
				if p.hvstate == chunkedIllegal {
					goto grammarError
				}
				if p.hvstate == chunkedConfirmed {
					p.IsChunked = true
				}
				cb.headerValue(p, buf[mark:i])
				p.state = sHeaderEOL
				if ctrl := cb.headerValueDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sHeaderValueContentLength:
			switch {
			case c >= '0' && c <= '9':
				p.ContentLength = p.ContentLength*10 + uint64(c-'0')
			case c == ' ', c == '\t':
				cb.headerValue(p, buf[mark:i])
				p.state = sHeaderValueEndTrim
				if ctrl := cb.headerValueDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			case c == '\r':
				cb.headerValue(p, buf[mark:i])
				p.state = sHeaderEOL
				if ctrl := cb.headerValueDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				goto grammarError
			}

		case sHeaderValueEndTrim:
			switch {
			case c == ' ', c == '\t':
				// stay
			case c == '\r':
				p.state = sHeaderEOL
			default:
				goto grammarError
			}

		case sHeaderEOL:
			if c != '\n' {
				goto grammarError
			}
			p.state = sHeaderCRLF

		case sHeaderCRLF:
			switch {
			case c == '\r':
				p.state = sHeaderEOH
			case token[c]:
				p.state = sHeaderName
				goto again
			default:
				goto grammarError
			}

		case sHeaderEOH:
			if c != '\n' {
				goto grammarError
			}
			if p.dupContentLength && (p.IsChunked || p.ContentLength > 0) {
				// a duplicate Content-Length is only an error if framing
				// actually depends on it; a duplicate alongside chunked
				// transfer-encoding is unambiguous only if Content-Length
				// ends up zero, which can't happen once duplicated.
				goto grammarError
			}
			if p.IsChunked && p.ContentLength > 0 {
				// both Content-Length and chunked transfer-encoding
				// were asserted: framing is ambiguous.
				goto grammarError
			}

			switch {
			case p.IsChunked:
				p.HasContent = true
				p.state = sBodyChunked
				if ctrl := cb.headersDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			case p.ContentLength > 0:
				p.HasContent = true
				p.state = sBodyContentLength
				if ctrl := cb.headersDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			default:
				if ctrl := cb.headersDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
				p.state = sStateEnd
				if ctrl := cb.parserDone(p); ctrl != CtrlContinue {
					return earlyReturn(ctrl, end, i)
				}
			}

		// --- body: Content-Length framing ------------------------------

		case sBodyContentLength:
			mark = i
			tmp := end - mark
			if int(p.ContentLength) > tmp {
				cb.content(p, buf[mark:mark+tmp])
				p.ContentLength -= uint64(tmp)
				i = end - 1
				continue
			}
			n := int(p.ContentLength)
			cb.content(p, buf[mark:mark+n])
			p.ContentLength = 0
			p.state = sStateEnd
			i = mark + n - 1
			if ctrl := cb.parserDone(p); ctrl != CtrlContinue {
				return earlyReturn(ctrl, end, i)
			}
			i = mark + n - 1

		// --- body: chunked framing --------------------------------------

		case sBodyChunked:
			switch {
			case c >= '0' && c <= '9':
				p.ContentLength = uint64(c - '0')
				p.state = sBodyChunkLen
			case c >= 'a' && c <= 'f':
				p.ContentLength = uint64(c-'a') + 10
				p.state = sBodyChunkLen
			case c >= 'A' && c <= 'F':
				p.ContentLength = uint64(c-'A') + 10
				p.state = sBodyChunkLen
			default:
				goto grammarError
			}

		case sBodyChunkLen:
			switch {
			case c >= '0' && c <= '9':
				p.ContentLength = p.ContentLength<<4 + uint64(c-'0')
			case c >= 'a' && c <= 'f':
				p.ContentLength = p.ContentLength<<4 + uint64(c-'a') + 10
			case c >= 'A' && c <= 'F':
				p.ContentLength = p.ContentLength<<4 + uint64(c-'A') + 10
			case c == '\r':
				if p.ContentLength == 0 {
					p.state = sBodyChunkedEOS
				} else {
					p.state = sBodyChunkLenCRLF
				}
			default:
				goto grammarError
			}

		case sBodyChunkLenCRLF:
			if c != '\n' {
				goto grammarError
			}
			p.state = sBodyChunk

		case sBodyChunk:
			mark = i
			tmp := end - mark
			if int(p.ContentLength) >= tmp {
				cb.content(p, buf[mark:mark+tmp])
				p.ContentLength -= uint64(tmp)
				i = end - 1
				continue
			}
			n := int(p.ContentLength)
			cb.content(p, buf[mark:mark+n])
			p.ContentLength = 0
			p.state = sBodyChunkCR
			i = mark + n - 1

		case sBodyChunkCR:
			if c != '\r' {
				goto grammarError
			}
			p.state = sBodyChunkCRLF

		case sBodyChunkCRLF:
			if c != '\n' {
				goto grammarError
			}
			p.state = sBodyChunked

		case sBodyChunkedEOS:
			// final '\n' of the last-chunk line ("0\r\n"); trailer headers
			// are not parsed, so this is the entire terminator.
			if c != '\n' {
				goto grammarError
			}
			p.state = sStateEnd
			if ctrl := cb.parserDone(p); ctrl != CtrlContinue {
				return earlyReturn(ctrl, end, i)
			}

		case sStateEnd:
			return end - i

		default:
			goto grammarError
		}
	}

	// buf exhausted mid-token: emit a partial callback (no "done") so
	// the host can see what arrived without waiting for the delimiter.
	switch {
	case p.state == sMethodChar:
		cb.method(p, buf[mark:end])
	case p.state > sRequestURI && p.state < sRequestRequireVersion:
		cb.requestURI(p, buf[mark:end])
	case p.state > sHeaderName && p.state < sHeaderValue:
		cb.headerName(p, buf[mark:end])
	case p.state > sHeaderValue && p.state < sHeaderValueEndTrim:
		// sHeaderValue itself is excluded: while still trimming leading
		// OWS, mark has not been set for this value yet, so there is
		// nothing real to emit. sHeaderValueEndTrim is excluded too: by
		// the time the parser gets there the full value has already
		// been handed to OnHeaderValue and only trailing OWS before CR
		// remains.
		cb.headerValue(p, buf[mark:end])
	}
	return 0

grammarError:
	cb.error(p)
	return -1
}

// earlyReturn computes Feed's return value for a "done" callback that
// returned something other than CtrlContinue. triggerIdx is the index
// within buf of the byte that was being processed when the callback
// fired.
func earlyReturn(ctrl Ctrl, end, triggerIdx int) int {
	if ctrl == CtrlReturn {
		return end - (triggerIdx + 1)
	}
	return 1
}
