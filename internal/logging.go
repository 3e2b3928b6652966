package internal

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger installs the global zap logger. Debug and info lines go to
// stdout (debug only when enabled), warnings and up always go to stderr.
func InitLogger(debug bool) {
	// Message only. Timestamps and caller info stay out of pipeable output.
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:  "msg",
		EncodeLevel: zapcore.CapitalLevelEncoder,
	})

	infoAndBelow := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if l >= zapcore.WarnLevel {
			return false
		}
		return debug || l >= zapcore.InfoLevel
	})
	warnAndUp := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), infoAndBelow),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), warnAndUp),
	)

	zap.ReplaceGlobals(zap.New(core))
}
