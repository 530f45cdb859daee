// golang.design/x/clipboard needs cgo everywhere but windows

//go:build js || (!windows && !cgo)

package main

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	WarnLogger.Print("clipboard is disabled in this build")
}

func ClipboardWriteText(str string) {
	InfoLogger.Printf("clipboard unavailable, config:\n%s", str)
}
