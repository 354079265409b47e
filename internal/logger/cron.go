package logger

// CronLogger adapts Logger to the cron.Logger interface
type CronLogger struct {
	log Logger
}

// NewCronLogger returns a cron.Logger backed by l
func NewCronLogger(l Logger) CronLogger {
	return CronLogger{log: l}
}

// Info cron scheduling messages are only interesting when debugging
func (c CronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debug().Fields(keysAndValues).Msg(msg)
}

// Error logs scheduler errors such as skipped jobs or recovered panics
func (c CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
