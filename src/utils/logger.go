package utils

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

type logHandle struct {
	logrus.Logger

	name     string
	colorful bool
}

// Format renders an entry as "timestamp name[pid] <LEVEL>: message", with
// the level colored when the output is a terminal.
func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvl := e.Level
	lvlStr := strings.ToUpper(lvl.String())
	if l.colorful {
		var color int
		switch lvl {
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		case logrus.WarnLevel:
			color = 33 // yellow
		default:
			color = 34 // blue
		}
		lvlStr = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvlStr)
	}
	const timeFormat = "2006/01/02 15:04:05.000000"
	str := fmt.Sprintf("%s %s[%d] <%s>: %s",
		e.Time.Format(timeFormat), l.name, os.Getpid(), lvlStr, e.Message)
	if len(e.Data) != 0 {
		str += " " + fmt.Sprint(e.Data)
	}
	if !strings.HasSuffix(str, "\n") {
		str += "\n"
	}
	return []byte(str), nil
}

var (
	mu       sync.Mutex
	loggers  = make(map[string]*logHandle)
	logLevel = logrus.InfoLevel
)

func newLogger(name string) *logHandle {
	l := &logHandle{
		Logger:   *logrus.New(),
		name:     name,
		colorful: isatty.IsTerminal(os.Stderr.Fd()),
	}
	l.Formatter = l
	l.Level = logLevel
	return l
}

// GetLogger returns the logger for the given name, creating it on first use.
func GetLogger(name string) *logHandle {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := newLogger(name)
	loggers[name] = l
	return l
}

// SetLogLevel sets the level of all loggers, current and future.
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	logLevel = lvl
	for _, l := range loggers {
		l.Level = lvl
	}
}

// DisableLogColor turns off colored levels, e.g. when output is piped.
func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		l.colorful = false
	}
}

// SetOutFile redirects all loggers to the named file.
func SetOutFile(name string) {
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		l.SetOutput(file)
		l.colorful = false
	}
}
