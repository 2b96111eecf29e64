package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMatchFilters(t *testing.T) {
	tests := []struct {
		name   string
		input  FilterInput
		errors []string
	}{
		{"empty input", FilterInput{}, nil},
		{"all valid", FilterInput{Sport: []string{"Soccer"}, Status: "completed", Limit: "100", Offset: "0"}, nil},
		{"repeated sport", FilterInput{Sport: []string{"Soccer", "Hockey"}}, []string{MsgSportNotString}},
		{"unknown status", FilterInput{Status: "postponed"}, []string{MsgInvalidStatus}},
		{"limit zero", FilterInput{Limit: "0"}, []string{MsgInvalidLimit}},
		{"limit too large", FilterInput{Limit: "101"}, []string{MsgInvalidLimit}},
		{"limit not a number", FilterInput{Limit: "ten"}, []string{MsgInvalidLimit}},
		{"negative offset", FilterInput{Offset: "-1"}, []string{MsgInvalidOffset}},
		{"offset not a number", FilterInput{Offset: "1.5"}, []string{MsgInvalidOffset}},
		{
			"every rule broken",
			FilterInput{Sport: []string{"a", "b"}, Status: "x", Limit: "0", Offset: "-3"},
			[]string{MsgSportNotString, MsgInvalidStatus, MsgInvalidLimit, MsgInvalidOffset},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMatchFilters(tt.input)
			assert.Equal(t, tt.errors, result.Errors)
			assert.Equal(t, len(tt.errors) == 0, result.IsValid())
		})
	}
}

func TestValidateID(t *testing.T) {
	for _, raw := range []string{"1", "42", "999999"} {
		assert.True(t, ValidateID(raw).IsValid(), raw)
	}
	for _, raw := range []string{"0", "-1", "abc", "", "1.5", " 2"} {
		result := ValidateID(raw)
		assert.False(t, result.IsValid(), raw)
		assert.Equal(t, []string{MsgInvalidID}, result.Errors)
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("7")
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)

	_, ok = ParseID("0")
	assert.False(t, ok)
}

func TestValidateSportName(t *testing.T) {
	assert.True(t, ValidateSportName("Soccer").IsValid())
	assert.True(t, ValidateSportName(strings.Repeat("x", 50)).IsValid())
	assert.False(t, ValidateSportName("").IsValid())
	assert.False(t, ValidateSportName("   ").IsValid())
	assert.False(t, ValidateSportName(strings.Repeat("x", 51)).IsValid())
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "in_progress", "completed"} {
		assert.True(t, ValidateStatus(s).IsValid(), s)
	}
	result := ValidateStatus("SCHEDULED")
	assert.Equal(t, []string{MsgInvalidStatus}, result.Errors)
}
