package chromologger

import (
	"time"

	"github.com/deixis/chromologger/console"
	"github.com/deixis/spine/config"
	"github.com/deixis/spine/log"
	"github.com/pkg/errors"
)

// ConfigKey is the config tree section read by ConfigFromTree
const ConfigKey = "chromologger"

// Option configures a Logger
type Option func(*options)

type options struct {
	callerDir      string
	diagnosticPath string
	printer        console.Printer
	logger         log.Logger
	locales        []string
	now            func() time.Time
	noColor        bool
}

func defaultOptions() options {
	return options{
		logger: log.NopLogger(),
	}
}

// WithCallerDir places the default log file in dir instead of the directory
// of the source file calling New.
func WithCallerDir(dir string) Option {
	return func(o *options) {
		o.callerDir = dir
	}
}

// WithDiagnosticPath sets the path of the diagnostic log, which receives the
// logger's own failures. It defaults to DefaultDiagnosticPath.
//
// The default sits beside the package sources, which is read-only in the
// module cache, so programs should set a writable path.
func WithDiagnosticPath(path string) Option {
	return func(o *options) {
		o.diagnosticPath = path
	}
}

// WithPrinter sets the console printer used for notices
func WithPrinter(p console.Printer) Option {
	return func(o *options) {
		o.printer = p
	}
}

// WithLogger attaches the host application logger. It receives a trace when
// the log file is opened or closed, and an error for every diagnostic.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLocale sets the preferred languages of console notices
func WithLocale(locales ...string) Option {
	return func(o *options) {
		o.locales = locales
	}
}

// WithClock sets the time source of record timestamps
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithNoColor disables colours on the default console printer
func WithNoColor(noColor bool) Option {
	return func(o *options) {
		o.noColor = noColor
	}
}

// Config defines the logger configuration, as found in the `chromologger`
// section of a config tree.
//
//	[chromologger]
//	file_name = "logs/app.log"
//	diagnostic_path = "/var/log/app/chromologger.log"
//	locale = "es"
//	no_color = true
type Config struct {
	FileName       string `toml:"file_name"`
	CallerDir      string `toml:"caller_dir"`
	DiagnosticPath string `toml:"diagnostic_path"`
	Locale         string `toml:"locale"`
	NoColor        bool   `toml:"no_color"`
}

// ConfigFromTree loads the logger configuration from tree. The
// `chromologger` section is used when present, otherwise tree itself.
func ConfigFromTree(tree config.Tree) (Config, error) {
	c := Config{}
	if tree != nil {
		if tree.Has(ConfigKey) {
			tree = tree.Get(ConfigKey)
		}
		if err := tree.Unmarshal(&c); err != nil {
			return Config{}, errors.Wrap(err, "cannot load logger config")
		}
	}
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	return c, nil
}

// Options converts c to options. Empty fields are left to their defaults.
func (c Config) Options() []Option {
	var opts []Option
	if c.CallerDir != "" {
		opts = append(opts, WithCallerDir(c.CallerDir))
	}
	if c.DiagnosticPath != "" {
		opts = append(opts, WithDiagnosticPath(c.DiagnosticPath))
	}
	if c.Locale != "" {
		opts = append(opts, WithLocale(c.Locale))
	}
	if c.NoColor {
		opts = append(opts, WithNoColor(true))
	}
	return opts
}
