// meta/meta.go
package meta

// Cells defines the number of cells in each player's row.
const Cells = 6

// InitialSeeds defines the number of seeds per cell at the start of a game.
const InitialSeeds = 4

// DefaultDepth defines the search depth used by the move advisor.
const DefaultDepth = 4

// MaxTurns caps the length of a game played by the engine.
const MaxTurns = 300
