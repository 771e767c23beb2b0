package logging

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// PrintfLogger adapts Logger to libraries that log through Printf/Fatalf,
// such as goose. Printf lines go out at Info, Fatalf at Error before exiting.
type PrintfLogger struct {
	l    Logger
	exit func(int)
}

func NewPrintfLogger(l Logger) *PrintfLogger {
	return &PrintfLogger{l: l, exit: os.Exit}
}

func (p *PrintfLogger) Printf(format string, v ...any) {
	p.l.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (p *PrintfLogger) Fatalf(format string, v ...any) {
	p.l.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
	p.exit(1)
}
