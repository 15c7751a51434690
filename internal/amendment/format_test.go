package amendment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmendmentType(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"1", "New enactment"},
		{"2", "Full revision"},
		{"3", "Law being amended"},
		{"4", "Partial-amendment supplementary provision"},
		{"8", "Repeal"},
		{"99", "other(99)"},
		{"", NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmendmentType(tt.code))
		})
	}
}

func TestFormatMission(t *testing.T) {
	assert.Equal(t, "New enactment / law being amended", FormatMission("New"))
	assert.Equal(t, "Partial amendment", FormatMission("Partial"))
	assert.Equal(t, "Whole", FormatMission("Whole"))
	assert.Equal(t, NotAvailable, FormatMission(""))
}

func TestCategories(t *testing.T) {
	got := Categories()
	require.Len(t, got, 50)
	assert.Equal(t, Category{Code: "001", Name: "憲法"}, got[0])
	assert.Equal(t, "050", got[49].Code)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Code, got[i].Code)
	}

	got[0].Name = "changed"
	assert.Equal(t, "憲法", Categories()[0].Name, "callers must not be able to mutate the table")

	assert.True(t, IsCategoryCode("014"))
	assert.False(t, IsCategoryCode("14"))
	assert.False(t, IsCategoryCode("051"))
}
