package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freshness/internal/core/domain"
)

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "2.12", domain.Resolved("2.12").String())
	assert.Equal(t, "not found", domain.NotFound().String())
	assert.Equal(t, "no lock", domain.NoLock().String())
	assert.Equal(t, "not found", domain.Version{}.String())
}

func TestVersion_EmptyValueIsNotFound(t *testing.T) {
	v := domain.Resolved("")
	assert.True(t, v.IsNotFound())
	assert.False(t, v.IsResolved())
}

func TestParseVersion(t *testing.T) {
	assert.Equal(t, domain.NotFound(), domain.ParseVersion("not found"))
	assert.Equal(t, domain.NoLock(), domain.ParseVersion("no lock"))
	assert.Equal(t, domain.Resolved("1.2.3"), domain.ParseVersion("1.2.3"))
}

func TestVersion_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Current domain.Version `json:"current"`
		Latest  domain.Version `json:"latest"`
	}{domain.NoLock(), domain.Resolved("2.13")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":"no lock","latest":"2.13"}`, string(data))

	var v domain.Version
	require.NoError(t, json.Unmarshal([]byte(`"not found"`), &v))
	assert.True(t, v.IsNotFound())
}
