package snake

// Speed ramp, in ticks per second.
const (
	BaseSpeed = 7
	MaxSpeed  = 25
	RampEvery = 5 // points per speed step
)

// Ramp returns the speed after a food has been eaten and the score became
// score. Every RampEvery points the speed grows by one, up to MaxSpeed.
func Ramp(score, speed int) int {
	if score > 0 && score%RampEvery == 0 && speed < MaxSpeed {
		return speed + 1
	}
	return speed
}
