// Package cli parses command-line arguments into an app.Config.
package cli
