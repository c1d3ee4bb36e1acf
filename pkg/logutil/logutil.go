// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	out     = io.Discard
	outFile *os.File
	loggers []*log.Logger
	mu      sync.Mutex
)

// GetLogger gets a logger with a prefix. All loggers returned by GetLogger
// share the same output, which discards everything until SetOutput or
// SetOutputFile is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer. If the old output was a file opened by SetOutputFile, it
// is closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(newout)
	outFile = nil
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is created or appended to. An empty name discards
// the output. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	setOutput(file)
	outFile = file
	return nil
}

func setOutput(newout io.Writer) {
	if outFile != nil {
		outFile.Close()
	}
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
