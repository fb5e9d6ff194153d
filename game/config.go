package game

// Config holds the fixed gameplay dimensions. It is built once at startup and
// passed by value into the entities that need it.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64

	CrabWidth  float64
	CrabHeight float64
	CrabStep   float64

	ClawWidth  float64
	ClawHeight float64
	ClawStep   float64

	SnackWidth      float64
	SnackCount      int
	SnackMinSpeed   float64
	SnackSpeedRange float64

	ArmWidth      float64
	ScoreFontSize float64
}

// DefaultConfig returns the 800x600 two-player configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,

		CrabWidth:  100,
		CrabHeight: 150,
		CrabStep:   1.5,

		ClawWidth:  35,
		ClawHeight: 50,
		ClawStep:   30,

		SnackWidth:      40,
		SnackCount:      15,
		SnackMinSpeed:   0.1,
		SnackSpeedRange: 2.0,

		ArmWidth:      10,
		ScoreFontSize: 38,
	}
}
