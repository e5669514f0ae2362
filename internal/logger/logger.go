package logger

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. В релизном режиме gin пишет JSON с уровня Info, в остальных - текст с Debug.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if gin.Mode() == gin.ReleaseMode {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
		return l
	}

	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// Component возвращает запись лога с полями компонента и модуля.
func Component(l *logrus.Logger, component, module string) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"component": component,
		"module":    module,
	})
}
