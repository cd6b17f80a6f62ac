package chromologger

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/deixis/chromologger/trace"
	"github.com/deixis/spine/log"
	"github.com/pkg/errors"
)

// Level defines the record severity
type Level int

const (
	// LevelInfo is used by Log
	LevelInfo Level = iota
	// LevelError is used by LogException and by the diagnostic log
	LevelError
)

// String returns the label written in records
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL%d", int(l))
	}
}

// lineFormatter renders a record as a single line:
//
//	[INFO][2024-05-01 09:04:05.012345] - message
type lineFormatter struct{}

var _ log.Formatter = lineFormatter{}

var flattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func (lineFormatter) Format(ctx *log.Ctx, tag, msg string, fields ...log.Field) (string, error) {
	if ctx == nil {
		return "", errors.New("missing record context")
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(ctx.Level)
	b.WriteString("][")
	b.WriteString(ctx.Timestamp)
	b.WriteString("] - ")
	b.WriteString(flattener.Replace(msg))
	for _, f := range fields {
		k, v := f.KV()
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(flattener.Replace(v))
	}
	b.WriteString("\n")
	return b.String(), nil
}

// Text returns the textual representation of a message given to Log.
//
// Strings and byte slices are written as is, errors use Error, and
// fmt.Stringer or encoding.TextMarshaler values their own representation.
// Booleans and numbers are formatted with strconv. Anything else is
// formatted with %+v.
func Text(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case []byte:
		return string(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return fmt.Sprintf("%+v", v)
		}
		return string(b)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%+v", v)
	}
}

// exceptionMessage builds the body of an ERROR record for err
func exceptionMessage(err error) (string, error) {
	frame, xerr := trace.Extract(err)
	if xerr != nil {
		return "", xerr
	}
	return fmt.Sprintf("Exception: %s - File: %s - ErrorLine: %d - Message: %s",
		trace.ClassName(err), frame.File, frame.Line, err.Error(),
	), nil
}

// safely runs f and turns a panic into an error
func safely(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = trace.FromPanic(r)
		}
	}()
	return f()
}
