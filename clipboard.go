//go:build !js && (windows || cgo)

package main

import (
	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	err := clipboard.Init()
	if err != nil {
		WarnLogger.Printf("clipboard is disabled: %v", err)
	}
	cm.Initialized = err == nil
}

func ClipboardWriteText(str string) {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtText, []byte(str))
	}
}
