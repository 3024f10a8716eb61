package token

// Type is the kind of a source line.
type Type string

// Token is a single non-empty source line together with its kind.
type Token struct {
	Type    Type
	Literal string
	Line    int
}

const (
	EOF Type = "EOF" // End of input

	HEADER   Type = "HEADER"   // [NAME] ; optional comment
	PROPERTY Type = "PROPERTY" // KEY=VALUE ; optional comment
	COMMENT  Type = "COMMENT"  // ; comment or // comment
)

// Classify returns the line kind for a line starting with firstChar.
// Only the first character is inspected; empty lines must be skipped by the
// caller since they have no kind.
func Classify(firstChar byte) Type {
	switch firstChar {
	case '[':
		return HEADER
	case ';', '/':
		return COMMENT
	}
	return PROPERTY
}
