package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}

	return append(msgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

// glyph size of ebitenutil's debug font
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	longest := 0
	lines := 0

	for _, msgs := range [][]DebugMsg{dm.PersistentDebugMsgs, dm.DebugMsgs} {
		for _, msg := range msgs {
			if lines > 0 {
				dm.builder.WriteString("\n")
			}

			// builder doesn't actually errors out
			// no need to check error
			dm.builder.WriteString(msg.Key)
			dm.builder.WriteString(": ")
			dm.builder.WriteString(msg.Value)

			longest = max(longest, len(msg.Key)+2+len(msg.Value))
			lines++
		}
	}

	if lines == 0 {
		return
	}

	const hozMargin = 5
	const vertMargin = 5

	boxW := f32(longest*debugCharWidth + hozMargin*2)
	boxH := f32(lines*debugLineHeight + vertMargin*2)

	w, h := ImageSize(dst)
	x, y := f32(w)-boxW, f32(h)-boxH

	vector.DrawFilledRect(dst, x, y, boxW, boxH, color.NRGBA{255, 255, 255, 255}, false)
	vector.DrawFilledRect(dst, x+2, y+2, boxW-4, boxH-4, color.NRGBA{0, 0, 0, 255}, false)

	ebitenutil.DebugPrintAt(dst, dm.builder.String(), int(x)+hozMargin, int(y)+vertMargin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
