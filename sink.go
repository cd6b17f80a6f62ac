package chromologger

import (
	"io"
	"os"

	"github.com/deixis/chromologger/fileutil"
	"github.com/deixis/spine/log"
	"github.com/pkg/errors"
)

// fileSink appends records to a log file it owns
type fileSink struct {
	f *os.File
}

var _ log.Printer = (*fileSink)(nil)

func (s *fileSink) Print(ctx *log.Ctx, line string) error {
	if _, err := io.WriteString(s.f, line); err != nil {
		return errors.Wrap(err, "cannot append record")
	}
	return nil
}

func (s *fileSink) Close() error {
	if err := s.f.Close(); err != nil {
		return errors.Wrap(err, "cannot close log file")
	}
	return nil
}

// rawSink appends each record with its own open/write/close cycle. It is
// used by the diagnostic log, which must not depend on any Logger state.
type rawSink struct {
	path string
}

var _ log.Printer = rawSink{}

func (s rawSink) Print(ctx *log.Ctx, line string) error {
	return fileutil.WriteRawLine(s.path, line)
}

func (s rawSink) Close() error {
	return nil
}
