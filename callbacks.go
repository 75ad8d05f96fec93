package httpwire

// Ctrl is the control code a "done" callback returns to the parser.
type Ctrl int

const (
	// CtrlContinue lets parsing proceed normally.
	CtrlContinue Ctrl = iota
	// CtrlReturn stops parsing now at the host's request: Feed returns
	// the count of bytes in the current chunk strictly after the byte
	// that triggered the callback, so the host can resume from there
	// (the triggering byte itself has already been consumed).
	CtrlReturn
	// CtrlError stops parsing because the host rejected the message.
	// Any Ctrl value other than CtrlContinue or CtrlReturn is treated
	// the same way: parsing halts and Feed returns the generic
	// "paused" sentinel (see Feed's doc comment).
	CtrlError
)

// Callbacks is the fixed callback table a host supplies to Feed. The
// emission callbacks (OnMethod, OnRequestURI, OnHeaderName,
// OnHeaderValue, OnContent) are invoked with a slice into the buffer
// Feed was called with; the slice is valid only for the duration of
// the call. The "done" callbacks additionally return a Ctrl that
// decides whether parsing continues.
//
// Any nil callback is treated as a no-op that returns CtrlContinue.
type Callbacks struct {
	OnMethod     func(p *Parser, b []byte)
	OnMethodDone func(p *Parser) Ctrl

	OnRequestURI     func(p *Parser, b []byte)
	OnRequestURIDone func(p *Parser) Ctrl

	OnStatusLineDone func(p *Parser) Ctrl

	OnHeaderName     func(p *Parser, b []byte)
	OnHeaderNameDone func(p *Parser) Ctrl

	OnHeaderValue     func(p *Parser, b []byte)
	OnHeaderValueDone func(p *Parser) Ctrl

	OnHeadersDone func(p *Parser) Ctrl

	OnContent func(p *Parser, b []byte)

	OnParserDone func(p *Parser) Ctrl

	OnError func(p *Parser)
}

// Defaults zeroes out cb, giving a callback table made entirely of
// no-ops. It mirrors ehttp_defaults: a convenient starting point for a
// host that only wants to override a handful of callbacks.
func Defaults(cb *Callbacks) *Callbacks {
	*cb = Callbacks{}
	return cb
}

func (cb *Callbacks) method(p *Parser, b []byte) {
	if cb.OnMethod != nil {
		cb.OnMethod(p, b)
	}
}

func (cb *Callbacks) methodDone(p *Parser) Ctrl {
	if cb.OnMethodDone != nil {
		return cb.OnMethodDone(p)
	}
	return CtrlContinue
}

func (cb *Callbacks) requestURI(p *Parser, b []byte) {
	if cb.OnRequestURI != nil {
		cb.OnRequestURI(p, b)
	}
}

func (cb *Callbacks) requestURIDone(p *Parser) Ctrl {
	if cb.OnRequestURIDone != nil {
		return cb.OnRequestURIDone(p)
	}
	return CtrlContinue
}

func (cb *Callbacks) statusLineDone(p *Parser) Ctrl {
	if cb.OnStatusLineDone != nil {
		return cb.OnStatusLineDone(p)
	}
	return CtrlContinue
}

func (cb *Callbacks) headerName(p *Parser, b []byte) {
	if cb.OnHeaderName != nil {
		cb.OnHeaderName(p, b)
	}
}

func (cb *Callbacks) headerNameDone(p *Parser) Ctrl {
	if cb.OnHeaderNameDone != nil {
		return cb.OnHeaderNameDone(p)
	}
	return CtrlContinue
}

func (cb *Callbacks) headerValue(p *Parser, b []byte) {
	if cb.OnHeaderValue != nil {
		cb.OnHeaderValue(p, b)
	}
}

func (cb *Callbacks) headerValueDone(p *Parser) Ctrl {
	if cb.OnHeaderValueDone != nil {
		return cb.OnHeaderValueDone(p)
	}
	return CtrlContinue
}

func (cb *Callbacks) headersDone(p *Parser) Ctrl {
	if cb.OnHeadersDone != nil {
		return cb.OnHeadersDone(p)
	}
	return CtrlContinue
}

func (cb *Callbacks) content(p *Parser, b []byte) {
	if cb.OnContent != nil {
		cb.OnContent(p, b)
	}
}

func (cb *Callbacks) parserDone(p *Parser) Ctrl {
	if cb.OnParserDone != nil {
		return cb.OnParserDone(p)
	}
	return CtrlContinue
}

func (cb *Callbacks) error(p *Parser) {
	if cb.OnError != nil {
		cb.OnError(p)
	}
}
