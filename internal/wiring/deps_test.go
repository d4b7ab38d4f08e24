package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency uses it
// and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers the dependency ID from the package of the type
	// passed to Dep[T]. Nodes here resolve ports.Logger, ports.ConfigLoader
	// and domain.Settings from distinct adapter nodes, which the analysis
	// reports as undeclared "ports" and "domain" dependencies.
	t.Skip("AssertDepsValid cannot map shared ports types to distinct adapter nodes")
	graft.AssertDepsValid(t, "../../internal")
}
