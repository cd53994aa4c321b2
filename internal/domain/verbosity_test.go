package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teicheck/teicheck/internal/domain"
)

func TestParseVerbosity_ValidNames(t *testing.T) {
	cases := map[string]domain.Verbosity{
		"minimal": domain.VerbosityMinimal,
		"details": domain.VerbosityDetails,
		"verbose": domain.VerbosityVerbose,
	}
	for name, want := range cases {
		got, err := domain.ParseVerbosity(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParseVerbosity_RejectsUnknown(t *testing.T) {
	_, err := domain.ParseVerbosity("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestVerbosity_Ordering(t *testing.T) {
	assert.Less(t, int(domain.VerbosityVerbose), int(domain.VerbosityDetails))
	assert.Less(t, int(domain.VerbosityDetails), int(domain.VerbosityMinimal))
}

func TestVerbosity_Allows(t *testing.T) {
	// verbose level shows everything
	assert.True(t, domain.VerbosityVerbose.Allows(domain.VerbosityVerbose))
	assert.True(t, domain.VerbosityVerbose.Allows(domain.VerbosityMinimal))

	// minimal level shows only minimal-importance messages
	assert.True(t, domain.VerbosityMinimal.Allows(domain.VerbosityMinimal))
	assert.False(t, domain.VerbosityMinimal.Allows(domain.VerbosityDetails))
	assert.False(t, domain.VerbosityMinimal.Allows(domain.VerbosityVerbose))
}

func TestVerbosity_String(t *testing.T) {
	for _, name := range domain.ValidVerbosities {
		v, err := domain.ParseVerbosity(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}
}
