package domain

// DefaultInput is the input a flat package list is checked against.
const DefaultInput = "nixpkgs"

// PackageGroup lists the packages checked against one input.
type PackageGroup struct {
	Input    string
	Packages []string
}

// Grouping is the ordered set of package groups for a run.
// Order only affects display.
type Grouping []PackageGroup

// Total returns the number of (input, package) pairs.
func (g Grouping) Total() int {
	n := 0
	for _, group := range g {
		n += len(group.Packages)
	}
	return n
}

// Inputs returns the input names in grouping order.
func (g Grouping) Inputs() []string {
	names := make([]string, 0, len(g))
	for _, group := range g {
		names = append(names, group.Input)
	}
	return names
}

// PackageList is the package configuration as written by the user.
// It is either a FlatList or a PerInputList.
type PackageList interface {
	// Grouping normalizes the list to the canonical input grouping.
	Grouping(defaultInput string) Grouping
	isPackageList()
}

// FlatList is a single list of packages checked against the default input.
type FlatList []string

// Grouping places every package under defaultInput.
func (l FlatList) Grouping(defaultInput string) Grouping {
	if len(l) == 0 {
		return nil
	}
	return Grouping{{Input: defaultInput, Packages: append([]string(nil), l...)}}
}

func (FlatList) isPackageList() {}

// PerInputList maps input names to package lists, keeping file order.
type PerInputList []PackageGroup

// Grouping returns the non-empty groups in declaration order.
func (l PerInputList) Grouping(_ string) Grouping {
	var g Grouping
	for _, group := range l {
		if len(group.Packages) == 0 {
			continue
		}
		g = append(g, PackageGroup{Input: group.Input, Packages: append([]string(nil), group.Packages...)})
	}
	return g
}

func (PerInputList) isPackageList() {}
