package surface

import (
	"io"
	"log"
	"os"
)

var (
	errLogger  = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)
	warnLogger = log.New(os.Stderr, "[ WARN ]: ", log.Lshortfile)
	infoLogger = log.New(os.Stdout, "[ INFO ]: ", log.Lshortfile)
)

// SetLogOutput redirects the package loggers, mostly so the terminal host
// can keep them off the screen.
func SetLogOutput(errW, infoW io.Writer) {
	errLogger.SetOutput(errW)
	warnLogger.SetOutput(errW)
	infoLogger.SetOutput(infoW)
}
