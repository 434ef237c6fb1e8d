// Package foundry implements the resolution engine that turns a
// catalog.Source into a graph of built resources.
//
// A Foundry owns one memoized dictionary per concept and an immutable
// registry of factories. Get consults the dictionary first; on a miss it
// looks up the entry's factory by concept and builder discriminator and
// invokes it with a resolver handle. Factories use the handle to request
// their dependencies by name, which drives the same resolution path
// recursively. Every instance is built at most once per Foundry, including
// under concurrent callers, and reference cycles in the configuration are
// reported rather than recursed into.
//
// Assembly is separate from resolution: an Assembler composes the factory
// registry (caller overrides replace the whole table for a concept) and
// produces an immutable Foundry. No factory runs until the first Get or an
// explicit eager Load.
package foundry
