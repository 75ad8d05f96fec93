package httpwire

// hnState is the header-name trie state: the prefix of a
// framing-relevant header name recognized so far.
type hnState uint8

// Header-name trie states. hnNoState is both "no header seen yet" (the
// state the trie is entered with) and "no longer a candidate" (the
// value stored once a name stops matching any recognized prefix); the
// two are distinguished only by context, exactly as in the C source
// this trie tracks.
const (
	hnNoState hnState = iota

	hnC
	hnCO
	hnCON
	hnCONN
	hnCONNE
	hnCONNEC
	hnCONNECT
	hnCONNECTI
	hnCONNECTIO
	hnConnection // terminal: "Connection"

	hnCONT
	hnCONTE
	hnCONTEN
	hnCONTENT
	hnCONTENTDash
	hnCONTENTDashL
	hnCONTENTDashLE
	hnCONTENTDashLEN
	hnCONTENTDashLENG
	hnCONTENTDashLENGT
	hnContentLength // terminal: "Content-Length"

	hnH
	hnHO
	hnHOS
	hnHost // terminal: "Host"

	hnT
	hnTR
	hnTRA
	hnTRAN
	hnTRANS
	hnTRANSF
	hnTRANSFE
	hnTRANSFER
	hnTRANSFERDash
	hnTRANSFERDashE
	hnTRANSFERDashEN
	hnTRANSFERDashENC
	hnTRANSFERDashENCO
	hnTRANSFERDashENCOD
	hnTRANSFERDashENCODI
	hnTRANSFERDashENCODIN
	hnTransferEncoding // terminal: "Transfer-Encoding"

	hnU
	hnUP
	hnUPG
	hnUPGR
	hnUPGRA
	hnUPGRAD
	hnUpgrade // terminal: "Upgrade"
)

// headerTrie[state][c] gives the next hnState for byte c seen while
// state is the trie's current state, case-insensitively. A 0
// (hnNoState) result means the accumulated name is no longer a
// candidate for any recognized header; the main state machine then
// stops consulting the trie for the rest of this name (while still
// accumulating the raw bytes for the on_header_name callback).
var headerTrie [hnUpgrade + 1][256]hnState

func addTrieEdge(from hnState, upper, lower byte, to hnState) {
	headerTrie[from][upper] = to
	headerTrie[from][lower] = to
}

func init() {
	addTrieEdge(hnNoState, 'C', 'c', hnC)
	addTrieEdge(hnNoState, 'H', 'h', hnH)
	addTrieEdge(hnNoState, 'T', 't', hnT)
	addTrieEdge(hnNoState, 'U', 'u', hnU)

	addTrieEdge(hnC, 'O', 'o', hnCO)
	addTrieEdge(hnCO, 'N', 'n', hnCON)
	addTrieEdge(hnCON, 'N', 'n', hnCONN)
	addTrieEdge(hnCON, 'T', 't', hnCONT)
	addTrieEdge(hnCONN, 'E', 'e', hnCONNE)
	addTrieEdge(hnCONNE, 'C', 'c', hnCONNEC)
	addTrieEdge(hnCONNEC, 'T', 't', hnCONNECT)
	addTrieEdge(hnCONNECT, 'I', 'i', hnCONNECTI)
	addTrieEdge(hnCONNECTI, 'O', 'o', hnCONNECTIO)
	addTrieEdge(hnCONNECTIO, 'N', 'n', hnConnection)

	addTrieEdge(hnCONT, 'E', 'e', hnCONTE)
	addTrieEdge(hnCONTE, 'N', 'n', hnCONTEN)
	addTrieEdge(hnCONTEN, 'T', 't', hnCONTENT)
	addTrieEdge(hnCONTENT, '-', '-', hnCONTENTDash)
	addTrieEdge(hnCONTENTDash, 'L', 'l', hnCONTENTDashL)
	addTrieEdge(hnCONTENTDashL, 'E', 'e', hnCONTENTDashLE)
	addTrieEdge(hnCONTENTDashLE, 'N', 'n', hnCONTENTDashLEN)
	addTrieEdge(hnCONTENTDashLEN, 'G', 'g', hnCONTENTDashLENG)
	addTrieEdge(hnCONTENTDashLENG, 'T', 't', hnCONTENTDashLENGT)
	addTrieEdge(hnCONTENTDashLENGT, 'H', 'h', hnContentLength)

	addTrieEdge(hnH, 'O', 'o', hnHO)
	addTrieEdge(hnHO, 'S', 's', hnHOS)
	addTrieEdge(hnHOS, 'T', 't', hnHost)

	addTrieEdge(hnT, 'R', 'r', hnTR)
	addTrieEdge(hnTR, 'A', 'a', hnTRA)
	addTrieEdge(hnTRA, 'N', 'n', hnTRAN)
	addTrieEdge(hnTRAN, 'S', 's', hnTRANS)
	addTrieEdge(hnTRANS, 'F', 'f', hnTRANSF)
	addTrieEdge(hnTRANSF, 'E', 'e', hnTRANSFE)
	addTrieEdge(hnTRANSFE, 'R', 'r', hnTRANSFER)
	addTrieEdge(hnTRANSFER, '-', '-', hnTRANSFERDash)
	addTrieEdge(hnTRANSFERDash, 'E', 'e', hnTRANSFERDashE)
	addTrieEdge(hnTRANSFERDashE, 'N', 'n', hnTRANSFERDashEN)
	addTrieEdge(hnTRANSFERDashEN, 'C', 'c', hnTRANSFERDashENC)
	addTrieEdge(hnTRANSFERDashENC, 'O', 'o', hnTRANSFERDashENCO)
	addTrieEdge(hnTRANSFERDashENCO, 'D', 'd', hnTRANSFERDashENCOD)
	addTrieEdge(hnTRANSFERDashENCOD, 'I', 'i', hnTRANSFERDashENCODI)
	addTrieEdge(hnTRANSFERDashENCODI, 'N', 'n', hnTRANSFERDashENCODIN)
	addTrieEdge(hnTRANSFERDashENCODIN, 'G', 'g', hnTransferEncoding)

	addTrieEdge(hnU, 'P', 'p', hnUP)
	addTrieEdge(hnUP, 'G', 'g', hnUPG)
	addTrieEdge(hnUPG, 'R', 'r', hnUPGR)
	addTrieEdge(hnUPGR, 'A', 'a', hnUPGRA)
	addTrieEdge(hnUPGRA, 'D', 'd', hnUPGRAD)
	addTrieEdge(hnUPGRAD, 'E', 'e', hnUpgrade)
}

// lookupHeaderName advances the header-name trie by one byte.
func lookupHeaderName(state hnState, c byte) hnState {
	return headerTrie[state][c]
}
