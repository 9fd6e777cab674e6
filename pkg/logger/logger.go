package logger

import (
	"log"
	"os"
)

var (
	// InfoLogger for normal operational messages
	InfoLogger *log.Logger

	// ErrorLogger for failures
	ErrorLogger *log.Logger
)

// Init initializes the package-level loggers
func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
