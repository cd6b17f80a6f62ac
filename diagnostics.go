package chromologger

import (
	"path/filepath"
	"runtime"

	"github.com/deixis/chromologger/console"
	"github.com/deixis/chromologger/dates"
	"github.com/deixis/chromologger/fileutil"
	"github.com/deixis/chromologger/trace"
	"github.com/deixis/spine/log"
	"golang.org/x/text/language"
)

// DefaultDiagnosticPath returns the diagnostic log used when none is
// configured: a log.log file beside the chromologger sources, as recorded at
// compile time. Outside a source checkout that directory is usually not
// writable (module cache, -trimpath builds) and diagnostics only reach the
// console; use WithDiagnosticPath instead.
func DefaultDiagnosticPath() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return fileutil.Join(".", DefaultFileName)
	}
	return fileutil.Join(filepath.Dir(file), DefaultFileName)
}

// diagnostics is the fallback channel for the logger's own failures.
//
// It writes through rawSink, never through a Logger, so a broken Logger
// cannot fail its own error reporting. When the diagnostic log cannot be
// written either, the failure is only printed on the console.
type diagnostics struct {
	path      string
	sink      log.Printer
	formatter log.Formatter
	clock     *dates.Clock
	printer   console.Printer
	logger    log.Logger
	locale    language.Tag
}

func newDiagnostics(o *options) *diagnostics {
	path := o.diagnosticPath
	if path == "" {
		path = DefaultDiagnosticPath()
	}
	return &diagnostics{
		path:      path,
		sink:      rawSink{path: path},
		formatter: lineFormatter{},
		clock:     dates.NewClock(o.now),
		printer:   o.printer,
		logger:    o.logger,
		locale:    MatchLocale(o.locales...),
	}
}

func (d *diagnostics) report(failure error) {
	defer func() {
		if r := recover(); r != nil {
			d.printer.Exc(WithDiagnosticFailure(d.path, trace.FromPanic(r)))
		}
	}()

	d.logger.Error("chromologger.diagnostic", failure.Error())
	d.printer.Err(noticeDiagnostic.Format(d.locale, d.path))

	err := d.write(failure)
	if err != nil {
		d.printer.Exc(WithDiagnosticFailure(d.path, err))
	}
}

func (d *diagnostics) write(failure error) error {
	msg, err := exceptionMessage(failure)
	if err != nil {
		return err
	}

	ctx := &log.Ctx{
		Level:     LevelError.String(),
		Timestamp: d.clock.Stamp(),
		File:      d.path,
	}
	line, err := d.formatter.Format(ctx, ctx.Level, msg)
	if err != nil {
		return err
	}
	return d.sink.Print(ctx, line)
}
