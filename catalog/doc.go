// Package catalog holds the static persona metadata consumed by the message
// and suggestion factories for text interpolation. The catalog is read-only
// after construction; the engine never defines persona behavior, only speaks
// with the identities listed here.
package catalog
