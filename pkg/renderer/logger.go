package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, leaving stdout free
// for image data
type DefaultLogger struct {
	out io.Writer
}

// Printf formats according to format and writes the result to the logger's output
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{out: os.Stderr}
}

// NewWriterLogger creates a logger that writes to out
func NewWriterLogger(out io.Writer) core.Logger {
	return &DefaultLogger{out: out}
}

// discardLogger drops everything; used when no logger is supplied
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
