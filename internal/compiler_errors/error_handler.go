package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

// PositionedError is a CompilerError that knows where in its input it
// happened.
type PositionedError interface {
	CompilerError
	GetFileName() string
	GetLine() int
	GetColumn() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Errors() []CompilerError
	Flush()
	FailNow()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) != 0
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

// Flush writes every collected error and forgets them.
func (eh *CompilerErrorHandler) Flush() {
	if !eh.HasErrors() {
		return
	}

	fmt.Fprintln(eh.writer, "Build failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", FormatError(err))
	}

	eh.errors = make([]CompilerError, 0)
}

func (eh *CompilerErrorHandler) FailNow() {
	eh.Flush()
	os.Exit(1)
}

func FormatError(err CompilerError) string {
	positioned, ok := err.(PositionedError)
	if !ok || positioned.GetLine() == 0 {
		return err.GetMessage()
	}

	fileName := positioned.GetFileName()
	if fileName == "" {
		fileName = "<input>"
	}

	return fmt.Sprintf(
		"%s:%d:%d: %s",
		fileName,
		positioned.GetLine(),
		positioned.GetColumn(),
		err.GetMessage())
}
