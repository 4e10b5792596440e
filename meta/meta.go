// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth used when none is configured.
const DEFAULT_DEPTH = 2

// DEPTH_BIAS is added to the configured depth to get the search level. Level
// 1 evaluates a board directly, so depth d expands d plies below the root and
// depth 0 scores the root itself.
const DEPTH_BIAS = 1

// STALEMATE_LIMIT is the number of consecutive non-capturing moves that ends
// the game in a draw.
const STALEMATE_LIMIT = 10

// MAX_TURNS caps engine-driven games.
const MAX_TURNS = 300

// GAMES_PER_MATCHUP is the default experiment size.
const GAMES_PER_MATCHUP = 10
