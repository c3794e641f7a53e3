// Package renderer converts the upstream's polymorphic response trees into
// typed entities.
//
// The upstream serializes every UI component as a named "renderer" object and
// nests them in whatever wrapper the page happens to use (tabs, section
// lists, shelves, grids). Nothing here assumes a fixed top-level shape:
// [Collect] finds every node stored under a known renderer tag regardless of
// wrapping, and [Parse] classifies each one independently through an ordered
// rule table. A node that matches no rule, or that is missing a required
// field, is dropped and counted; the rest of the page is unaffected.
//
// All functions are pure. Parsing a response touches no shared state and is
// safe to run concurrently across responses.
package renderer
