package domain

import "fmt"

type ValidationKind string

const (
	KindEmptyInput    ValidationKind = "empty-input"
	KindNotAStatement ValidationKind = "not-a-statement"
	KindTooLong       ValidationKind = "too-long"
)

// ValidationError is a caller-correctable rejection of the input text.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrEmptyInput = &ValidationError{
		Kind:    KindEmptyInput,
		Message: "Matn kiritilmadi.",
	}
	ErrNotAStatement = &ValidationError{
		Kind:    KindNotAStatement,
		Message: "Faqat matn tahlili uchun kiriting, savollarga javob berilmaydi.",
	}
	ErrTooLong = &ValidationError{
		Kind:    KindTooLong,
		Message: "Matn 5000 belgidan oshmasligi kerak.",
	}
)

// TooLong builds a too-long error naming the configured limit.
func TooLong(limit int) *ValidationError {
	return &ValidationError{
		Kind:    KindTooLong,
		Message: fmt.Sprintf("Matn %d belgidan oshmasligi kerak.", limit),
	}
}

// RemoteError wraps any failure of a remote analyzer.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
