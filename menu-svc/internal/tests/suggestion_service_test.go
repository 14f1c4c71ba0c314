package tests

import (
	"testing"

	"best-menu/menu-svc/internal/service"
	"best-menu/menu-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionLookup_Suggest(t *testing.T) {
	repo, err := storage.NewFixtureRepository()
	require.NoError(t, err)
	lookup := service.NewSuggestionLookup(repo)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty", query: "", want: []string{}},
		{name: "single character", query: "a", want: []string{}},
		{name: "prefix", query: "Grand", want: []string{"Grand Palace Hotel Restaurant"}},
		{name: "case insensitive", query: "oCEAN", want: []string{"Oceanview Resort Dining"}},
		{name: "source order", query: "re", want: []string{"Grand Palace Hotel Restaurant", "Oceanview Resort Dining"}},
		{name: "no match", query: "zz", want: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, lookup.Suggest(testCase.query))
		})
	}
}
