package extraction

import "fmt"

// EmptyTextError indicates a PDF with no extractable text (e.g. image-only scans).
type EmptyTextError struct {
	Filename string
}

func (e *EmptyTextError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("empty PDF %s: could not extract text", e.Filename)
	}
	return "empty PDF: could not extract text"
}

// ReadError represents a failure reading or decoding the PDF blob.
type ReadError struct {
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF read failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF read failed: %s", e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
