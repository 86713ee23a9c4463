package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/treinoapp/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger and returns a cleanup func
// which flushes sentry and closes the rotated log file.
func Setup(params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	sentryEnabled := false
	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			sentryEnabled = true
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry set up successfully")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	var output io.WriteCloser
	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
	} else {
		if !strings.HasSuffix(params.LogFileName, ".log") {
			params.LogFileName += ".log"
		}

		lumberJackLogger := &lumberjack.Logger{
			Filename:  params.LogFileName,
			MaxSize:   50,    // megabytes
			LocalTime: false, // false -> use UTC
			Compress:  true,
		}
		output = lumberJackLogger

		if params.LogToStdout {
			logrus.Println("writing logs to file and STDOUT")
			output = pkg.NewCombinedWriter(os.Stdout, lumberJackLogger)
		}
		logrus.SetOutput(output)
	}

	return func() {
		if sentryEnabled {
			sentry.Flush(5 * time.Second)
		}
		if output != nil {
			logrus.SetOutput(os.Stdout)
			if err := output.Close(); err != nil {
				logrus.Errorf("close log output: %s", err)
			}
		}
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
