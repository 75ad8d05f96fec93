// Package httpwire implements an incremental, push-style HTTP/1.x
// message parser.
//
// The parser is a byte-driven state machine: the host feeds it
// arbitrary chunks of input through Feed, and as recognizable pieces
// of the message are bounded within the chunk (a method, a request
// URI, a header name or value, a body slice) the parser invokes a
// callback carrying a slice into the buffer the host just supplied.
// Nothing is copied and nothing is retained between Feed calls other
// than the small amount of state needed to resume: the current FSM
// state, the header-name trie state, the close/chunked sub-recognizer
// state, and a handful of counters and flags.
//
// A Parser is not safe for concurrent use; one Parser parses one
// message at a time. Different Parsers are fully independent and may
// be driven from different goroutines.
package httpwire
