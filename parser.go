package httpwire

// Parser holds the state of one in-progress HTTP/1.x message parse.
// It is owned by the host, allocates nothing on its own, and is not
// safe for concurrent use: one Parser serves one message at a time.
//
// Fields are exported so a host's callbacks can read the parsed
// framing values (MajorVersion, StatusCode, IsChunked, ...) directly;
// none of them should be written by the host except through Init,
// Reset, and Feed.
type Parser struct {
	Mode    Mode
	Context any

	// RequestType is resolved once ModeDetect commits to ModeRequest or
	// ModeResponse; for ModeRequest/ModeResponse it equals Mode from the
	// start.
	RequestType Mode

	MajorVersion uint8
	MinorVersion uint8
	StatusCode   uint16

	// ContentLength is the parsed Content-Length value; while parsing a
	// chunked body it is reused as the current chunk's remaining byte
	// count.
	ContentLength uint64

	HasContent     bool
	IsChunked      bool
	IsUpgrade      bool
	ShouldClose    bool
	HaveHostHeader bool

	state            state
	hnstate          hnState
	hvstate          hvState
	dupContentLength bool
}

// Init zeroes p, sets its mode and context, and places it in the
// initial state for that mode (ModeDetect starts undetermined; the
// first bytes fed to it decide request vs response).
func Init(p *Parser, mode Mode, ctx any) *Parser {
	*p = Parser{
		Mode:    mode,
		Context: ctx,
	}
	p.state = initialState(mode)
	if mode == ModeRequest || mode == ModeResponse {
		p.RequestType = mode
	}
	return p
}

// Reset reinitializes p for a new message, preserving Mode and
// updating Context.
func Reset(p *Parser, ctx any) *Parser {
	return Init(p, p.Mode, ctx)
}

// Done reports whether the parser has reached the terminal state and
// will not consume any further bytes until Reset.
func (p *Parser) Done() bool {
	return p.state == sStateEnd
}

// Version is the (major, minor, patch) triple of this parser
// implementation, independent of any parsed HTTP version.
type Version struct {
	Major, Minor, Patch uint8
}

// LibraryVersion returns this package's own version triple.
func LibraryVersion() Version {
	return Version{Major: 0, Minor: 1, Patch: 0}
}
