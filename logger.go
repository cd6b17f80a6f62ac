package chromologger

import (
	"runtime"
	"sync"

	"github.com/deixis/chromologger/console"
	"github.com/deixis/chromologger/dates"
	"github.com/deixis/chromologger/fileutil"
	"github.com/deixis/spine/log"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

type state int

const (
	stateOpen state = iota
	stateFailed
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateFailed:
		return "not open"
	default:
		return "closed"
	}
}

// Logger appends INFO and ERROR records to a single log file.
//
// A Logger never panics and never returns an error. When the log file cannot
// be opened or written, the failure is recorded in the diagnostic log
// instead and a notice is printed on the console.
type Logger struct {
	mu sync.Mutex

	path  string
	state state
	sink  log.Printer

	formatter log.Formatter
	clock     *dates.Clock
	printer   console.Printer
	logger    log.Logger
	locale    language.Tag
	diag      *diagnostics
}

// New opens the log file fileName for appending, creating it and any missing
// directory.
//
// When fileName is DefaultFileName (or empty) the file is placed beside the
// source file calling New. Any other name is treated as a path, resolved
// against the working directory when relative.
//
// New always returns a usable Logger. If the file cannot be opened, the
// failure goes to the diagnostic log and every later record follows it
// there.
func New(fileName string, opts ...Option) *Logger {
	_, file, _, _ := runtime.Caller(1)
	return open(fileName, file, opts)
}

// NewFromConfig is New using a loaded Config. Options given explicitly take
// precedence over the config.
func NewFromConfig(c Config, opts ...Option) *Logger {
	_, file, _, _ := runtime.Caller(1)
	return open(c.FileName, file, append(c.Options(), opts...))
}

// With opens a Logger like New, calls fn with it and closes it, even when fn
// panics. It returns the result of Close.
func With(fileName string, fn func(l *Logger), opts ...Option) (closed bool) {
	_, file, _, _ := runtime.Caller(1)
	l := open(fileName, file, opts)
	defer func() {
		closed = l.Close()
	}()

	fn(l)
	return closed
}

func open(fileName, callerFile string, opts []Option) *Logger {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.printer == nil {
		o.printer = console.Stdio(o.noColor)
	}
	dir := o.callerDir
	if dir == "" {
		dir = callerDir(callerFile)
	}

	l := &Logger{
		path:      fileName,
		formatter: lineFormatter{},
		clock:     dates.NewClock(o.now),
		printer:   o.printer,
		logger:    o.logger,
		locale:    MatchLocale(o.locales...),
		diag:      newDiagnostics(&o),
	}

	path, err := resolvePath(fileName, dir)
	if err != nil {
		l.fail(WithOpenFailure(fileName, err))
		return l
	}
	l.path = path

	f, err := fileutil.OpenForAppend(path)
	if err != nil {
		l.fail(WithOpenFailure(path, err))
		return l
	}
	l.sink = &fileSink{f: f}
	l.state = stateOpen
	l.logger.Trace("chromologger.open", path)
	return l
}

func (l *Logger) fail(err error) {
	l.state = stateFailed
	l.diag.report(err)
}

// Path returns the absolute path of the log file
func (l *Logger) Path() string {
	return l.path
}

// Failed returns whether the log file could not be opened
func (l *Logger) Failed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == stateFailed
}

// Log appends msg as an INFO record and prints a console notice pointing at
// the log file. See Text for how msg is converted.
func (l *Logger) Log(msg interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var text string
	err := safely(func() error {
		text = Text(msg)
		return nil
	})
	if err != nil {
		l.diag.report(WithWriteFailure(l.path, err))
	} else {
		l.write(LevelInfo, text)
	}

	l.printer.Inf(noticeCheckLog.Format(l.locale, l.path))
}

// LogException appends an ERROR record describing err: its type, the file
// and line where it happened, and its message.
//
// The location comes from the stack trace carried by err (see package
// trace). An error without a stack trace cannot be located; it is recorded
// in the diagnostic log rather than the log file. Use trace.Capture or
// errors.WithStack on such errors first.
func (l *Logger) LogException(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var msg string
	xerr := safely(func() error {
		var e error
		msg, e = exceptionMessage(err)
		return e
	})
	if xerr != nil {
		l.diag.report(WithExtractionFailure(xerr))
		return
	}
	l.write(LevelError, msg)
}

// write appends a single record, diverting any failure to the diagnostic
// log. There is no retry.
func (l *Logger) write(level Level, msg string) {
	err := safely(func() error {
		if l.state != stateOpen {
			return errors.Errorf("log file is %s", l.state)
		}

		ctx := &log.Ctx{
			Level:     level.String(),
			Timestamp: l.clock.Stamp(),
			File:      l.path,
		}
		line, err := l.formatter.Format(ctx, ctx.Level, msg)
		if err != nil {
			return err
		}
		return l.sink.Print(ctx, line)
	})
	if err != nil {
		l.diag.report(WithWriteFailure(l.path, err))
	}
}

// Close releases the log file. It returns true when an open file was
// released, and false when the Logger failed to open or was already closed.
func (l *Logger) Close() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != stateOpen {
		return false
	}
	l.state = stateClosed
	sink := l.sink
	l.sink = nil

	if err := sink.Close(); err != nil {
		l.diag.report(WithWriteFailure(l.path, err))
	}
	l.logger.Trace("chromologger.close", l.path)
	return true
}
