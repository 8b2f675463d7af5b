package core

// RuntimeConfig contains configuration passed to the game shell at start.
// Screen dimensions are terminal cells; the simulation field has its own units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}
