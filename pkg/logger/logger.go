package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер сервиса, пишущий в stdout
func New(logLevel string) *logrus.Logger {
	return newLogger(logLevel, os.Stdout, &logrus.JSONFormatter{})
}

// NewConsole создает текстовый логгер для CLI. Вывод команды идет в stdout,
// поэтому логи пишутся в out (обычно stderr).
func NewConsole(logLevel string, out io.Writer) *logrus.Logger {
	return newLogger(logLevel, out, &logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

func newLogger(logLevel string, out io.Writer, formatter logrus.Formatter) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(formatter)
	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
