package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/freshness/internal/core/domain"
)

func TestFlatList_Grouping(t *testing.T) {
	g := domain.FlatList{"hello", "git"}.Grouping(domain.DefaultInput)

	assert.Equal(t, domain.Grouping{{Input: "nixpkgs", Packages: []string{"hello", "git"}}}, g)
	assert.Equal(t, 2, g.Total())
	assert.Nil(t, domain.FlatList{}.Grouping(domain.DefaultInput))
}

func TestPerInputList_Grouping(t *testing.T) {
	l := domain.PerInputList{
		{Input: "nixpkgs", Packages: []string{"hello"}},
		{Input: "empty"},
		{Input: "home-manager", Packages: []string{"hm-a", "hm-b"}},
	}

	g := l.Grouping(domain.DefaultInput)

	assert.Equal(t, []string{"nixpkgs", "home-manager"}, g.Inputs())
	assert.Equal(t, 3, g.Total())
}

func TestOnlyOutdated(t *testing.T) {
	results := []domain.ComparisonResult{
		{Package: "a", Status: domain.StatusEqual},
		{Package: "b", Status: domain.StatusOutdated},
		{Package: "c", Status: domain.StatusUnknown},
		{Package: "d", Status: domain.StatusOutdated},
	}

	out := domain.OnlyOutdated(results)

	assert.Len(t, out, 2)
	assert.Equal(t, "b", out[0].Package)
	assert.Equal(t, "d", out[1].Package)
}
