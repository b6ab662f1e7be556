package log

import (
	// Stdlib
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

type Level uint32

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var levelStrings = []string{"trace", "debug", "verbose", "info", "off"}

func LevelStrings() []string {
	ls := make([]string, len(levelStrings))
	copy(ls, levelStrings)
	return ls
}

func StringToLevel(s string) (Level, error) {
	for i, str := range levelStrings {
		if str == s {
			return Level(i), nil
		}
	}
	return Off, fmt.Errorf("unknown log level: %v", s)
}

func MustStringToLevel(s string) Level {
	level, err := StringToLevel(s)
	if err != nil {
		panic(err)
	}
	return level
}

func MustLevelToString(level Level) string {
	if int(level) >= len(levelStrings) {
		panic(fmt.Errorf("unknown log level: %v", uint32(level)))
	}
	return levelStrings[level]
}

var v = uint32(Info)

func SetV(level Level) {
	atomic.StoreUint32(&v, uint32(level))
}

// Output backend --------------------------------------------------------------

// Tags used to prefix the log lines. They are also used as the "tag" field
// when the JSON backend is active.
const (
	tagRun      = "RUN"
	tagOk       = "OK"
	tagSkip     = "SKIP"
	tagWarn     = "WARN"
	tagFail     = "FAIL"
	tagRollback = "ROLLBACK"
	tagLog      = "INFO"
	tagNone     = ""
)

type backend interface {
	Write(tag, msg string)
	Raw(msg string)
	Sync()
}

var (
	mu     sync.Mutex
	output backend = newConsoleBackend(os.Stderr)
)

// SetOutput makes the console backend write into the given writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = newConsoleBackend(w)
	mu.Unlock()
}

// UseJSON switches to the structured JSON backend.
func UseJSON() error {
	b, err := newZapBackend()
	if err != nil {
		return err
	}
	mu.Lock()
	output = b
	mu.Unlock()
	return nil
}

// Logger ----------------------------------------------------------------------

type Logger bool

func V(level Level) Logger {
	return Logger(atomic.LoadUint32(&v) <= uint32(level))
}

func (l Logger) write(tag, msg string) {
	if !l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	output.Write(tag, msg)
}

func (l Logger) Run(msg string) {
	l.write(tagRun, msg)
}

func (l Logger) Ok(msg string) {
	l.write(tagOk, msg)
}

func (l Logger) Skip(msg string) {
	l.write(tagSkip, msg)
}

func (l Logger) Warn(msg string) {
	l.write(tagWarn, msg)
}

func (l Logger) Fail(msg string) {
	l.write(tagFail, msg)
}

func (l Logger) Rollback(msg string) {
	l.write(tagRollback, msg)
}

func (l Logger) Log(msg string) {
	l.write(tagLog, msg)
}

func (l Logger) NewLine(msg string) {
	l.write(tagNone, msg)
}

func (l Logger) FailWithDetails(msg string, details *bytes.Buffer) {
	if !l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	output.Write(tagFail, msg)
	if details != nil && details.Len() != 0 {
		output.Raw(details.String())
	}
}

func (l Logger) Print(v ...interface{}) {
	if l {
		mu.Lock()
		output.Raw(fmt.Sprint(v...))
		mu.Unlock()
	}
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.Print(fmt.Sprintf(format, v...))
}

func (l Logger) Println(v ...interface{}) {
	l.Print(fmt.Sprintln(v...))
}

// Package-level shortcuts -----------------------------------------------------

func Run(msg string) {
	V(Info).Run(msg)
}

func Ok(msg string) {
	V(Info).Ok(msg)
}

func Skip(msg string) {
	V(Info).Skip(msg)
}

func Warn(msg string) {
	V(Info).Warn(msg)
}

func Fail(msg string) {
	V(Info).Fail(msg)
}

func Rollback(msg string) {
	V(Info).Rollback(msg)
}

func Log(msg string) {
	V(Info).Log(msg)
}

func NewLine(msg string) {
	V(Info).NewLine(msg)
}

func FailWithDetails(msg string, details *bytes.Buffer) {
	V(Info).FailWithDetails(msg, details)
}

func Print(v ...interface{}) {
	V(Info).Print(v...)
}

func Printf(format string, v ...interface{}) {
	V(Info).Printf(format, v...)
}

func Println(v ...interface{}) {
	V(Info).Println(v...)
}

// Fatalln prints the message unconditionally and exits with status 1.
func Fatalln(v ...interface{}) {
	mu.Lock()
	output.Raw(strings.TrimLeft(fmt.Sprintln(v...), "\n"))
	output.Sync()
	mu.Unlock()
	os.Exit(1)
}
