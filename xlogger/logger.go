package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

const redacted = "[redacted]"

type Config struct {
	Level      string `yaml:"level" json:"level" default:"info"`
	LogType    string `yaml:"log_type" json:"log_type" default:"auto"`
	AddSource  bool   `yaml:"add_source" json:"add_source"`
	SourcePath string `yaml:"source_path" json:"source_path"`

	// RedactKeys lists attribute keys whose values are never written.
	RedactKeys []string `yaml:"redact_keys" json:"redact_keys"`

	// Output defaults to os.Stderr.
	Output io.Writer `yaml:"-" json:"-"`
}

func New(conf Config) *slog.Logger {
	out := conf.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	return slog.New(getHandler(conf.LogType, out, opts))
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(out, opts)

	case "auto":
		if isTerminal(out) {
			return slog.NewTextHandler(out, opts)
		}
		return slog.NewJSONHandler(out, opts)

	default:
		return slog.NewTextHandler(out, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if slices.Contains(conf.RedactKeys, attr.Key) {
			return slog.String(attr.Key, redacted)
		}

		if attr.Key == slog.SourceKey {
			if source, ok := attr.Value.Any().(*slog.Source); ok && source != nil {
				return slog.String(slog.SourceKey, trimSource(source, conf.SourcePath))
			}
		}

		return attr
	}
}

func trimSource(source *slog.Source, sourcePath string) string {
	file := source.File

	if len(sourcePath) > 0 {
		if strings.HasPrefix(file, sourcePath) {
			file = strings.TrimPrefix(file, sourcePath)
		} else if index := strings.Index(file, sourcePath); index > 0 {
			file = file[index+len(sourcePath):]
		}
	}

	return fmt.Sprintf("%s:%d", file, source.Line)
}

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isTerminalFd(int(f.Fd()))
}
