// Package kvstore defines the key-value store contract backing dimensions,
// plus the built-in implementations: an ephemeral in-memory store and a
// durable SQLite-backed store.
package kvstore
