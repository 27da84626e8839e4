package log

import (
	"log"
	"os"
)

// Logging levels
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

var Stdlog, Errlog *log.Logger

func init() {
	Stdlog = log.New(os.Stdout, "ezgraver: ", log.Ldate|log.Ltime)
	Errlog = log.New(os.Stderr, "ezgraver error: ", log.Ldate|log.Ltime)
}

// LogMessage writes a leveled message to the standard logger, or to the
// error logger for WARN and ERROR.
func LogMessage(level, message string) {
	switch level {
	case WARN, ERROR:
		Errlog.Printf("[%s] %s", level, message)
	default:
		Stdlog.Printf("[%s] %s", level, message)
	}
}

// PrintIfErr logs msg together with the error if err is non-nil.
func PrintIfErr(msg string, err error) {
	if err != nil {
		Errlog.Printf("%s: %v", msg, err)
	}
}
