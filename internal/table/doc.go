// Package table implements the table resource: a named join of resolved
// dimensions and metrics. Physical tables reference dimensions and
// metrics directly; logical tables union the columns of other tables.
package table
