package providers

import (
	"dsatrack/internal/structures"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeRead
	TypeWrite
)

var logFileNames = map[TypeEnum]string{
	TypeApp:   "app.log",
	TypeRead:  "read.log",
	TypeWrite: "write.log",
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

// GetLogTypeByRequestType routes mutating requests to the write log and everything else to the read log.
func GetLogTypeByRequestType(method string) TypeEnum {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return TypeWrite
	default:
		return TypeRead
	}
}

func (l *LogProvider) logger(t TypeEnum) *zerolog.Logger {
	lg, ok := l.loggers[t]
	if !ok {
		lg = l.loggers[TypeApp]
	}
	return &lg
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
	l.files = nil
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	provider := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(logFileNames))}
	for t, name := range logFileNames {
		path := filepath.Join(conf.Logger.Dir, name)
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.FileMode(conf.Logger.Mode))
		if err != nil {
			provider.Close()
			return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
		}
		provider.files = append(provider.files, file)

		var out io.Writer = file
		if conf.Debug {
			out = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		provider.loggers[t] = zerolog.New(out).Level(level).With().Timestamp().Str("log", name).Logger()
	}

	return provider, nil
}
