package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

func TestRandomPackages(t *testing.T) {
	packages := randomPackages(6, "RUN, SWM", false)
	require.Len(t, packages, 6)

	for i, pkg := range packages {
		want := ftracker.CodeRunning
		if i%2 == 1 {
			want = ftracker.CodeSwimming
		}
		assert.Equal(t, want, pkg.Type)

		_, err := ftracker.ReadPackage(pkg.Type, pkg.Data)
		assert.NoError(t, err)
	}
}

func TestRandomPackagesUnknown(t *testing.T) {
	packages := randomPackages(2, "", true)
	require.Len(t, packages, 3)

	for _, pkg := range packages[:2] {
		assert.Contains(t, ftracker.Codes(), pkg.Type)
	}

	_, err := ftracker.ReadPackage(packages[2].Type, packages[2].Data)
	assert.ErrorIs(t, err, ftracker.ErrUnknownTraining)
}

func TestRandomPackagesNegativeCount(t *testing.T) {
	assert.Empty(t, randomPackages(-5, "", false))

	packages := randomPackages(-2, "", true)
	require.Len(t, packages, 1)
	assert.NotContains(t, ftracker.Codes(), packages[0].Type)
}
