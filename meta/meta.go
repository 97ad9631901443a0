// meta/meta.go
package meta

// Width defines the default number of columns.
const Width = 7

// Height defines the default number of rows.
const Height = 6

// Depth defines the default search depth for cutoff searchers.
const Depth = 4

// Parallelism defines the default number of games an experiment runs at once.
const Parallelism = 8

// Games defines the default number of games per experiment matchup.
const Games = 10

// MaxTurns caps the length of a game on oversized boards.
const MaxTurns = 1000
