package document

import "fmt"

// EncodingError reports bytes that are not clean UTF-8 text.
type EncodingError struct {
	Line    int
	Column  int
	Message string
}

func (err *EncodingError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d)", err.Message, err.Line, err.Column)
	}
	return err.Message
}

// ParseError reports malformed YAML or an unusable document shape.
type ParseError struct {
	Line    int
	Message string
	Err     error
}

func (err *ParseError) Error() string {
	msg := err.Message
	if err.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Err)
	}
	if err.Line > 0 {
		return fmt.Sprintf("%s (line %d)", msg, err.Line)
	}
	return msg
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
