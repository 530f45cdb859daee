package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

// UpdateDelta is the time one Update call stands for.
func UpdateDelta() time.Duration {
	tps := eb.TPS()
	if tps <= 0 {
		// eb.SyncWithFPS
		tps = int(eb.ActualFPS())
		if tps <= 0 {
			tps = eb.DefaultTPS
		}
	}
	return time.Second / time.Duration(tps)
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("cpu render")
//		defer timer.Report()
//		// reports cpu render took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	DebugPrint(p.Name, time.Since(p.Start))
}
