package misc

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

var (
	ErrLogger  = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)
	WarnLogger = log.New(os.Stderr, "[ WARN ]: ", log.Lshortfile)
	InfoLogger = log.New(os.Stdout, "[ INFO ]: ", log.Lshortfile)
)

// SetLogOutput redirects the shared loggers. errW takes FAIL and WARN.
func SetLogOutput(errW, infoW io.Writer) {
	ErrLogger.SetOutput(errW)
	WarnLogger.SetOutput(errW)
	InfoLogger.SetOutput(infoW)
}

func CheckFileExists(path string) (bool, error) {
	// check if file exists
	info, err := os.Stat(path)

	if err == nil { // file exists
		mode := info.Mode()
		if !mode.IsRegular() {
			return false, fmt.Errorf("%s is not a regular file", path)
		}

		return true, nil
	} else if errors.Is(err, os.ErrNotExist) { // file does not exists
		return false, nil
	} else { // unable to check if file exists or not
		return false, err
	}
}
