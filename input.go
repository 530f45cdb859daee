package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"revealwave/surface"
)

var TheInputManager struct {
	// below fields are updated by UpdatePointer
	// only public for convinience
	// don't write in to it

	PointerInside bool
	LastPointer   FPoint
	HasPointer    bool

	LastCursor FPoint
	// set by a touch, cleared once the mouse moves again
	TouchMode bool

	TouchingBuf    []eb.TouchID
	JustTouchedBuf []eb.TouchID
}

// UpdatePointer feeds this tick's cursor and touch state into s.
//
// Ebitengine has no enter or leave events, they are derived from whether
// the pointer is inside bounds. A finger that is down wins over the
// cursor, and after a touch ends the pointer counts as outside until the
// mouse moves.
func UpdatePointer(s *surface.Surface, bounds FRectangle) {
	im := &TheInputManager

	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])
	im.JustTouchedBuf = ebi.AppendJustPressedTouchIDs(im.JustTouchedBuf[:0])

	cursor := CursorFPt()

	if len(im.TouchingBuf) > 0 {
		im.TouchMode = true
	} else if !cursor.Eq(im.LastCursor) {
		im.TouchMode = false
	}
	im.LastCursor = cursor

	var pos FPoint
	var inside bool

	switch {
	case len(im.TouchingBuf) > 0:
		pos = TouchFPt(im.TouchingBuf[0])
		inside = pos.In(bounds)
	case im.TouchMode:
		inside = false
	default:
		pos = cursor
		inside = eb.IsFocused() && pos.In(bounds)
	}

	// =============================
	// enter and leave
	// =============================
	if inside != im.PointerInside {
		if inside {
			s.PointerEnter()
		} else {
			s.PointerLeave()
		}
		im.PointerInside = inside
	}

	// =============================
	// move
	// =============================
	if inside && (!im.HasPointer || !pos.Eq(im.LastPointer)) {
		s.PointerMove(pos.X, pos.Y)
		im.LastPointer = pos
		im.HasPointer = true
	}

	// =============================
	// click
	// =============================
	if IsMouseButtonJustPressed(eb.MouseButtonLeft) && cursor.In(bounds) {
		s.Click(cursor.X, cursor.Y)
	}
	for _, touchId := range im.JustTouchedBuf {
		touchPos := TouchFPt(touchId)
		if touchPos.In(bounds) {
			s.Click(touchPos.X, touchPos.Y)
		}
	}
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}
