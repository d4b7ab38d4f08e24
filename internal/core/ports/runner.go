// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandRunner runs an external program and captures its standard output.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args and returns its trimmed standard output.
	// A non-zero exit, a timeout or a start failure is returned as an error.
	Run(ctx context.Context, name string, args ...string) (string, error)
}
