package markdown

// Block is one fenced code block found in a document.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
}

// Blocks is the ordered list of fenced code blocks in a document.
type Blocks []*Block
