package effect

// Activation is the smoothed "pointer is interacting" scalar. It moves a
// fixed fraction of the way toward its target every frame and never lands
// on 0 or 1 exactly unless it started there.
type Activation float64

func (a Activation) Step(active bool, rate float64) Activation {
	var target Activation
	if active {
		target = 1
	}
	return a + (target-a)*Activation(rate)
}

func (a Activation) Value() float64 {
	return float64(a)
}
