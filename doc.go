// Package chromologger is a small per-caller file logger.
//
// A Logger appends timestamped INFO and ERROR records to one file:
//
//	[INFO][2024-05-01 09:04:05.012345] - started
//	[ERROR][2024-05-01 09:04:05.013012] - Exception: *errors.fundamental - File: /src/app/main.go - ErrorLine: 42 - Message: boom
//
// Logging never fails the host application. Failures of the logger itself
// (the file cannot be opened, a record cannot be written, an error cannot be
// located) are appended to a separate diagnostic log, and when even that
// fails they are only printed on the console.
//
//	logger := chromologger.New("app.log")
//	defer logger.Close()
//
//	logger.Log("started")
//	if err := run(); err != nil {
//		logger.LogException(err)
//	}
package chromologger
