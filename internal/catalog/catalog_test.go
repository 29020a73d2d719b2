package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDivision(t *testing.T) {
	tests := []struct {
		in   string
		want Division
		ok   bool
	}{
		{"D1", DivisionD1, true},
		{"d1", DivisionD1, true},
		{"Division II", DivisionD2, true},
		{" d3 ", DivisionD3, true},
		{"naia", DivisionNAIA, true},
		{"NJCAA", DivisionJUCO, true},
		{"", "", false},
		{"D4", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDivision(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	require.Len(t, first, 24)

	first[0].Name = "mutated"
	second := All()
	assert.Equal(t, "University of Alabama", second[0].Name)
}

func TestByID(t *testing.T) {
	college, ok := ByID(1)
	require.True(t, ok)
	assert.Equal(t, "University of Alabama", college.Name)
	assert.Equal(t, DivisionD1, college.Division)

	_, ok = ByID(999)
	assert.False(t, ok)
}

func TestByDivision_EveryDivisionRepresented(t *testing.T) {
	for _, div := range []Division{DivisionD1, DivisionD2, DivisionD3, DivisionNAIA, DivisionJUCO} {
		colleges := ByDivision(div)
		require.NotEmpty(t, colleges, string(div))
		for _, c := range colleges {
			assert.Equal(t, div, c.Division)
		}
	}
}

func TestSearch(t *testing.T) {
	results := Search("texas")
	names := make([]string, 0, len(results))
	for _, c := range results {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "University of Texas at Austin")
	assert.Contains(t, names, "West Texas A&M University")

	assert.Empty(t, Search(""))
	assert.Empty(t, Search("zzzz no such school"))

	// City search
	byCity := Search("tuscaloosa")
	require.Len(t, byCity, 1)
	assert.Equal(t, "University of Alabama", byCity[0].Name)
}

func TestCatalog_JUCOEntriesOmitSelectivityData(t *testing.T) {
	for _, c := range ByDivision(DivisionJUCO) {
		assert.Zero(t, c.AdmissionRate, c.Name)
		assert.Zero(t, c.AvgGPA, c.Name)
	}
}
