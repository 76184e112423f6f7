// Command xtee initializes the xtee logger from defaults, the environment
// and flags, logs an initialization line and, when stdin is piped, tees
// every input line to the console and the rotating file.
//
// Usage:
//
//	xtee [flags]
//
// Environment (overridden by flags):
//
//	XTEE_NAME, XTEE_FILE, XTEE_CONSOLE, XTEE_FILE_ENABLED, XTEE_MAX_SIZE,
//	XTEE_MAX_FILES, XTEE_LEVEL, XTEE_FLUSH_LEVEL, XTEE_BACKEND, XTEE_COLOR,
//	XTEE_MAX_RATE, XTEE_COMPRESS
//
// Exit status is 1 when the configuration is invalid or stdin cannot be read.
package main
