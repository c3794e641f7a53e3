// Package models defines the typed entities produced by parsing upstream
// responses: [Song], [Album], [Artist] and [Playlist], grouped into a
// [ResultPage] with an optional [Continuation] cursor.
//
// Entities are value objects. They are constructed fresh on every parse,
// never mutated afterwards, and carry the upstream's opaque identifiers as
// their only join keys. Nothing in this package performs I/O.
package models
