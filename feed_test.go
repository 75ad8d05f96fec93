package httpwire

import (
	"bytes"
	"testing"
)

// recorder accumulates every callback invocation into plain strings and
// byte buffers so a test can assert on the sequence and content of what
// Feed reported, mirroring the teacher's style of collecting parse
// results into a small struct rather than asserting inline per callback.
type recorder struct {
	method      bytes.Buffer
	requestURI  bytes.Buffer
	headerNames []string
	headerVals  []string
	content     bytes.Buffer
	statusLine  int
	headersDone int
	done        int
	errs        int

	curName bytes.Buffer
	curVal  bytes.Buffer
}

func (r *recorder) callbacks() *Callbacks {
	return &Callbacks{
		OnMethod: func(p *Parser, b []byte) { r.method.Write(b) },
		OnRequestURI: func(p *Parser, b []byte) {
			r.requestURI.Write(b)
		},
		OnStatusLineDone: func(p *Parser) Ctrl {
			r.statusLine++
			return CtrlContinue
		},
		OnHeaderName: func(p *Parser, b []byte) { r.curName.Write(b) },
		OnHeaderNameDone: func(p *Parser) Ctrl {
			r.headerNames = append(r.headerNames, r.curName.String())
			r.curName.Reset()
			return CtrlContinue
		},
		OnHeaderValue: func(p *Parser, b []byte) { r.curVal.Write(b) },
		OnHeaderValueDone: func(p *Parser) Ctrl {
			r.headerVals = append(r.headerVals, r.curVal.String())
			r.curVal.Reset()
			return CtrlContinue
		},
		OnHeadersDone: func(p *Parser) Ctrl {
			r.headersDone++
			return CtrlContinue
		},
		OnContent: func(p *Parser, b []byte) { r.content.Write(b) },
		OnParserDone: func(p *Parser) Ctrl {
			r.done++
			return CtrlContinue
		},
		OnError: func(p *Parser) { r.errs++ },
	}
}

func TestFeedSimpleGetRequest(t *testing.T) {
	msg := "GET /index.html HTTP/1.1\r\nHost: example.com\r\n\r\n"
	var p Parser
	Init(&p, ModeRequest, nil)
	r := &recorder{}

	n := Feed(&p, []byte(msg), r.callbacks())
	if n != 0 {
		t.Fatalf("Feed returned %d, want 0", n)
	}
	if !p.Done() {
		t.Fatalf("parser not done")
	}
	if r.method.String() != "GET" {
		t.Errorf("method = %q, want GET", r.method.String())
	}
	if r.requestURI.String() != "/index.html" {
		t.Errorf("uri = %q", r.requestURI.String())
	}
	if p.MajorVersion != 1 || p.MinorVersion != 1 {
		t.Errorf("version = %d.%d, want 1.1", p.MajorVersion, p.MinorVersion)
	}
	if !p.HaveHostHeader {
		t.Errorf("HaveHostHeader not set")
	}
	if r.headersDone != 1 || r.done != 1 {
		t.Errorf("headersDone=%d done=%d, want 1,1", r.headersDone, r.done)
	}
}

func TestFeedResponseWithContentLength(t *testing.T) {
	msg := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello"
	var p Parser
	Init(&p, ModeResponse, nil)
	r := &recorder{}

	n := Feed(&p, []byte(msg), r.callbacks())
	if n != 0 {
		t.Fatalf("Feed returned %d, want 0", n)
	}
	if p.StatusCode != 200 {
		t.Errorf("status = %d, want 200", p.StatusCode)
	}
	if r.content.String() != "hello" {
		t.Errorf("content = %q, want hello", r.content.String())
	}
	if p.ContentLength != 0 {
		t.Errorf("ContentLength not drained: %d", p.ContentLength)
	}
}

func TestFeedChunkedBody(t *testing.T) {
	msg := "POST /x HTTP/1.1\r\nHost: a\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"5\r\nhello\r\n6\r\n world\r\n0\r\n"
	var p Parser
	Init(&p, ModeRequest, nil)
	r := &recorder{}

	n := Feed(&p, []byte(msg), r.callbacks())
	if n != 0 {
		t.Fatalf("Feed returned %d, want 0", n)
	}
	if !p.IsChunked {
		t.Errorf("IsChunked not set")
	}
	if r.content.String() != "hello world" {
		t.Errorf("content = %q, want %q", r.content.String(), "hello world")
	}
	if r.done != 1 {
		t.Errorf("done=%d, want 1", r.done)
	}
}

func TestFeedConnectionClose(t *testing.T) {
	msg := "HTTP/1.0 200 OK\r\nConnection: close\r\n\r\n"
	var p Parser
	Init(&p, ModeResponse, nil)
	r := &recorder{}

	Feed(&p, []byte(msg), r.callbacks())
	if !p.ShouldClose {
		t.Errorf("ShouldClose not set")
	}
}

func TestFeedPipelinedTrailingBytes(t *testing.T) {
	msg := "GET / HTTP/1.1\r\nHost: a\r\nContent-Length: 2\r\n\r\nhiGET"
	var p Parser
	Init(&p, ModeRequest, nil)
	r := &recorder{}

	n := Feed(&p, []byte(msg), r.callbacks())
	if n != 3 {
		t.Fatalf("Feed returned %d, want 3 (len(%q))", n, "GET")
	}
	if r.content.String() != "hi" {
		t.Errorf("content = %q, want hi", r.content.String())
	}
}

func TestFeedAmbiguousFraming(t *testing.T) {
	msg := "POST / HTTP/1.1\r\nHost: a\r\nContent-Length: 4\r\nTransfer-Encoding: chunked\r\n\r\n"
	var p Parser
	Init(&p, ModeRequest, nil)
	r := &recorder{}

	n := Feed(&p, []byte(msg), r.callbacks())
	if n >= 0 {
		t.Fatalf("Feed returned %d, want negative (ambiguous framing)", n)
	}
	if r.errs != 1 {
		t.Errorf("errs = %d, want 1", r.errs)
	}
}

func TestFeedDuplicateContentLength(t *testing.T) {
	msg := "POST / HTTP/1.1\r\nHost: a\r\nContent-Length: 4\r\nContent-Length: 4\r\n\r\nabcd"
	var p Parser
	Init(&p, ModeRequest, nil)
	r := &recorder{}

	n := Feed(&p, []byte(msg), r.callbacks())
	if n >= 0 {
		t.Fatalf("Feed returned %d, want negative (duplicate Content-Length)", n)
	}
}

func TestFeedModeDetectRequest(t *testing.T) {
	msg := "HEAD / HTTP/1.1\r\n\r\n"
	var p Parser
	Init(&p, ModeDetect, nil)
	r := &recorder{}

	Feed(&p, []byte(msg), r.callbacks())
	if p.RequestType != ModeRequest {
		t.Errorf("RequestType = %v, want request", p.RequestType)
	}
	if r.method.String() != "HEAD" {
		t.Errorf("method = %q", r.method.String())
	}
}

func TestFeedModeDetectResponse(t *testing.T) {
	msg := "HTTP/1.1 204 No Content\r\n\r\n"
	var p Parser
	Init(&p, ModeDetect, nil)
	r := &recorder{}

	Feed(&p, []byte(msg), r.callbacks())
	if p.RequestType != ModeResponse {
		t.Errorf("RequestType = %v, want response", p.RequestType)
	}
	if p.StatusCode != 204 {
		t.Errorf("status = %d", p.StatusCode)
	}
}

func TestFeedModeDetectLiteralHTTPMethod(t *testing.T) {
	// "HTTPTEST" never hits a literal '/' right after "HTTP", so it must
	// commit to being a (nonstandard) request method.
	msg := "HTTPTEST / HTTP/1.1\r\n\r\n"
	var p Parser
	Init(&p, ModeDetect, nil)
	r := &recorder{}

	Feed(&p, []byte(msg), r.callbacks())
	if p.RequestType != ModeRequest {
		t.Errorf("RequestType = %v, want request", p.RequestType)
	}
	if r.method.String() != "HTTPTEST" {
		t.Errorf("method = %q, want HTTPTEST", r.method.String())
	}
}

// TestFeedByteAtATime checks that feeding a message one byte per Feed
// call produces the same callback results as feeding it whole: the
// parser's resumable state must not depend on where chunk boundaries
// fall.
func TestFeedByteAtATime(t *testing.T) {
	msg := "PUT /a/b?c=d HTTP/1.1\r\nHost: x\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"3\r\nfoo\r\n0\r\n"

	var whole Parser
	Init(&whole, ModeRequest, nil)
	rWhole := &recorder{}
	if n := Feed(&whole, []byte(msg), rWhole.callbacks()); n != 0 {
		t.Fatalf("whole feed returned %d", n)
	}

	var incr Parser
	Init(&incr, ModeRequest, nil)
	rIncr := &recorder{}
	for i := 0; i < len(msg); i++ {
		if n := Feed(&incr, []byte(msg)[i:i+1], rIncr.callbacks()); n != 0 {
			t.Fatalf("byte %d: Feed returned %d", i, n)
		}
	}

	if rWhole.method.String() != rIncr.method.String() {
		t.Errorf("method mismatch: %q vs %q", rWhole.method.String(), rIncr.method.String())
	}
	if rWhole.requestURI.String() != rIncr.requestURI.String() {
		t.Errorf("uri mismatch: %q vs %q", rWhole.requestURI.String(), rIncr.requestURI.String())
	}
	if rWhole.content.String() != rIncr.content.String() {
		t.Errorf("content mismatch: %q vs %q", rWhole.content.String(), rIncr.content.String())
	}
}

func TestFeedPartialMethodAtChunkBoundary(t *testing.T) {
	var p Parser
	Init(&p, ModeRequest, nil)
	r := &recorder{}

	n := Feed(&p, []byte("GE"), r.callbacks())
	if n != 0 {
		t.Fatalf("Feed returned %d, want 0", n)
	}
	if r.method.String() != "GE" {
		t.Errorf("partial method = %q, want GE", r.method.String())
	}

	n = Feed(&p, []byte("T / HTTP/1.1\r\n\r\n"), r.callbacks())
	if n != 0 {
		t.Fatalf("Feed returned %d, want 0", n)
	}
	if r.method.String() != "GET" {
		t.Errorf("method = %q, want GET", r.method.String())
	}
}

func TestFeedCtrlReturn(t *testing.T) {
	const tail = "extra"
	msg := "GET / HTTP/1.1\r\nHost: a\r\n\r\n" + tail
	var p Parser
	Init(&p, ModeRequest, nil)
	cb := &Callbacks{
		OnHeadersDone: func(p *Parser) Ctrl { return CtrlReturn },
	}
	n := Feed(&p, []byte(msg), cb)
	if n != len(tail) {
		t.Fatalf("Feed returned %d, want %d (len(%q))", n, len(tail), tail)
	}
	if string([]byte(msg)[len(msg)-n:]) != tail {
		t.Errorf("resume point does not point at %q", tail)
	}
}

func TestFeedResetReusesParser(t *testing.T) {
	var p Parser
	Init(&p, ModeRequest, nil)
	r1 := &recorder{}
	Feed(&p, []byte("GET / HTTP/1.1\r\n\r\n"), r1.callbacks())
	if !p.Done() {
		t.Fatalf("first message not done")
	}

	Reset(&p, nil)
	if p.Done() {
		t.Fatalf("parser done right after Reset")
	}
	r2 := &recorder{}
	Feed(&p, []byte("POST /y HTTP/1.1\r\n\r\n"), r2.callbacks())
	if r2.method.String() != "POST" {
		t.Errorf("method = %q, want POST", r2.method.String())
	}
}

func TestFeedChunkedOrderIllegal(t *testing.T) {
	msg := "POST / HTTP/1.1\r\nHost: a\r\nTransfer-Encoding: chunked, gzip\r\n\r\n"
	var p Parser
	Init(&p, ModeRequest, nil)
	r := &recorder{}

	n := Feed(&p, []byte(msg), r.callbacks())
	if n >= 0 {
		t.Fatalf("Feed returned %d, want negative (chunked not last coding)", n)
	}
	if r.errs != 1 {
		t.Errorf("errs = %d, want 1", r.errs)
	}
}

func TestFeedRequestURIFirstByteRestricted(t *testing.T) {
	cases := []string{
		"GET 9foo HTTP/1.1\r\n\r\n",
		"GET %20 HTTP/1.1\r\n\r\n",
	}
	for _, msg := range cases {
		var p Parser
		Init(&p, ModeRequest, nil)
		r := &recorder{}

		n := Feed(&p, []byte(msg), r.callbacks())
		if n >= 0 {
			t.Fatalf("Feed(%q) returned %d, want negative (illegal request-target first byte)", msg, n)
		}
		if r.errs != 1 {
			t.Errorf("Feed(%q): errs = %d, want 1", msg, r.errs)
		}
	}
}
