package tracelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/precond/pkg/optional"
)

// Formatter renders trace events as text.
type Formatter interface {
	Entrance(signature string) string
	Params(names []string, values []any) string
	Exit(signature string, elapsed optional.Value[time.Duration]) string
	Return(value any) string
	Exception(signature string, err error) string
}

// TextFormatter is the default Formatter.
type TextFormatter struct{}

var _ Formatter = TextFormatter{}

func (TextFormatter) Entrance(signature string) string {
	return "Entering method " + signature + "."
}

func (TextFormatter) Params(names []string, values []any) string {
	var b strings.Builder
	b.WriteString("Input parameters: [")
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%v", name, values[i])
	}
	b.WriteString("]")
	return b.String()
}

func (TextFormatter) Exit(signature string, elapsed optional.Value[time.Duration]) string {
	d, ok := elapsed.Get()
	if !ok {
		return "Exiting method " + signature + "."
	}
	return fmt.Sprintf("Exiting method %s. Time spent in the method: %s.", signature, d)
}

func (TextFormatter) Return(value any) string {
	return fmt.Sprintf("Output parameter: %v", value)
}

func (TextFormatter) Exception(signature string, err error) string {
	return fmt.Sprintf("Error in method %s. Details: %v", signature, err)
}
