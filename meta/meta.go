// meta/meta.go
package meta

// DefaultDepth is the search depth of the automated player.
const DefaultDepth = 3

// MaxTurns caps a game loop. A game has at most 60 placements with at most one pass
// between any two of them, so a finished game never reaches it.
const MaxTurns = 130

// MaxAttempts bounds how often an agent is asked again after proposing an illegal move.
const MaxAttempts = 3

// ExperimentGames is the number of games per experiment matchup.
const ExperimentGames = 10
