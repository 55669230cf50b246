package logger

import (
	"go.uber.org/zap"
)

var instance *zap.SugaredLogger

// Initialize - настраивает общий для сервиса логгер с заданным уровнем.
// Повторный вызов заменяет логгер, что используется в тестах.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.DisableStacktrace = true
	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	instance = base.Sugar()
	return nil
}

// Get - доступ к логгеру напрямую, когда нужны структурные поля
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - сброс буферов логгера, вызывается при завершении сервиса
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

func Debug(args ...interface{}) { Get().Debugln(args...) }
func Info(args ...interface{})  { Get().Infoln(args...) }
func Warn(args ...interface{})  { Get().Warnln(args...) }
func Error(args ...interface{}) { Get().Errorln(args...) }
func Panic(args ...interface{}) { Get().Panicln(args...) }
