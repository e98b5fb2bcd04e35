package logger

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Debug function
func Debug(args ...interface{}) {
	log.Debug().Timestamp().Msg(fmt.Sprint(args...))
}

// Debugf function
func Debugf(format string, v ...interface{}) {
	log.Debug().Timestamp().Msgf(format, v...)
}

// DebugWithFields function
func DebugWithFields(msg string, kv map[string]interface{}) {
	log.Debug().Timestamp().Fields(kv).Msg(msg)
}

// Info function
func Info(args ...interface{}) {
	log.Info().Timestamp().Msg(fmt.Sprint(args...))
}

// Infof function
func Infof(format string, v ...interface{}) {
	log.Info().Timestamp().Msgf(format, v...)
}

// Warn function
func Warn(args ...interface{}) {
	log.Warn().Timestamp().Msg(fmt.Sprint(args...))
}

// Warnf function
func Warnf(format string, v ...interface{}) {
	log.Warn().Timestamp().Msgf(format, v...)
}

// Error function
func Error(args ...interface{}) {
	log.Error().Timestamp().Msg(fmt.Sprint(args...))
}

// Errorf function
func Errorf(format string, v ...interface{}) {
	log.Error().Timestamp().Msgf(format, v...)
}

// Errors function to log errors package
func Errors(err error) {
	log.Error().Timestamp().Msg(err.Error())
}

// Fatalf function
func Fatalf(format string, v ...interface{}) {
	log.Fatal().Timestamp().Msgf(format, v...)
}
