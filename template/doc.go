// Package template renders messages and suggestions from fixed, table-driven
// templates. One template exists per known trigger type; unknown types yield
// no message rather than an error so a broken registry entry can never take
// the engine down. Content here is deliberately canned: the engine performs
// no language generation.
package template
