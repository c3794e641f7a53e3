// Package repositories provides the local persistence layer consumed by the
// CLI: a SQLite-backed cache of parsed songs keyed by their stable upstream
// identifiers.
//
// The client core itself holds no entity cache; pages are parsed fresh on
// every call and ownership passes to the caller. This package is that caller-
// side collaborator. Because upstream identifiers are globally unique and
// stable, caching is a plain upsert by id.
package repositories
