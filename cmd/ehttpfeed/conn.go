package main

import (
	"net"

	"github.com/google/uuid"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"

	"github.com/veltrix/httpwire"
	"github.com/veltrix/httpwire/hostutil"
)

// connHandler owns one accepted connection's Parser and reassembles the
// partial callback slices httpwire hands out at arbitrary chunk
// boundaries into complete values, using a pooled buffer per in-flight
// token so nothing is allocated on the common path.
type connHandler struct {
	id   string
	conn net.Conn
	log  *zap.SugaredLogger

	parser httpwire.Parser
	method *bytebufferpool.ByteBuffer
	name   *bytebufferpool.ByteBuffer
	value  *bytebufferpool.ByteBuffer
}

func newConnHandler(conn net.Conn, mode httpwire.Mode, log *zap.SugaredLogger) *connHandler {
	id := uuid.NewString()
	h := &connHandler{
		id:     id,
		conn:   conn,
		log:    log.With("conn", id),
		method: bytebufferpool.Get(),
		name:   bytebufferpool.Get(),
		value:  bytebufferpool.Get(),
	}
	httpwire.Init(&h.parser, mode, h)
	return h
}

// release returns h's pooled buffers; call once the connection is done.
func (h *connHandler) release() {
	bytebufferpool.Put(h.method)
	bytebufferpool.Put(h.name)
	bytebufferpool.Put(h.value)
}

func (h *connHandler) callbacks() *httpwire.Callbacks {
	// method is the resolved method of the message being parsed; it stays
	// MUnknown for responses.
	var method hostutil.Method
	return &httpwire.Callbacks{
		OnMethod: func(p *httpwire.Parser, b []byte) { h.method.Write(b) },
		OnMethodDone: func(p *httpwire.Parser) httpwire.Ctrl {
			m := hostutil.ResolveMethod(h.method.Bytes())
			method = m
			h.log.Debugw("method", "raw", h.method.String(), "resolved", m)
			h.method.Reset()
			return httpwire.CtrlContinue
		},

		OnHeaderName: func(p *httpwire.Parser, b []byte) { h.name.Write(b) },
		OnHeaderNameDone: func(p *httpwire.Parser) httpwire.Ctrl {
			return httpwire.CtrlContinue
		},

		OnHeaderValue: func(p *httpwire.Parser, b []byte) { h.value.Write(b) },
		OnHeaderValueDone: func(p *httpwire.Parser) httpwire.Ctrl {
			h.log.Debugw("header", "name", h.name.String(), "value", h.value.String())
			h.name.Reset()
			h.value.Reset()
			return httpwire.CtrlContinue
		},

		OnHeadersDone: func(p *httpwire.Parser) httpwire.Ctrl {
			return httpwire.CtrlContinue
		},

		OnContent: func(p *httpwire.Parser, b []byte) {
			// A real host would stream b to its application layer here;
			// the demo host only needs to drain it.
		},

		OnParserDone: func(p *httpwire.Parser) httpwire.Ctrl {
			messagesParsedTotal.WithLabelValues(method.String()).Inc()
			method = hostutil.MUnknown
			return httpwire.CtrlContinue
		},

		OnError: func(p *httpwire.Parser) {
			parseErrorsTotal.Inc()
			h.log.Warnw("parse error", "state", p.RequestType.String())
		},
	}
}

// serve reads from the connection until it closes or a parse error
// occurs, resetting the parser and re-feeding any pipelined leftover
// bytes between messages.
func (h *connHandler) serve() {
	defer h.conn.Close()
	defer h.release()
	cb := h.callbacks()
	buf := make([]byte, 4096)
	var pending []byte

	for {
		if len(pending) == 0 {
			n, err := h.conn.Read(buf)
			if n == 0 || err != nil {
				return
			}
			bytesFedTotal.Add(float64(n))
			pending = buf[:n]
		}

		n := httpwire.Feed(&h.parser, pending, cb)
		switch {
		case n < 0:
			return
		case n == 0:
			pending = nil
		default:
			consumed := len(pending) - n
			if h.parser.Done() {
				httpwire.Reset(&h.parser, h)
			}
			pending = pending[consumed:]
		}
	}
}
