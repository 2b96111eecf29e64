package validation

import (
	"fmt"
	"strconv"
	"strings"

	"sport-predict/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	MsgSportNotString = "Sport filter must be a string"
	MsgInvalidStatus  = "Status must be one of: scheduled, in_progress, completed"
	MsgInvalidLimit   = "Limit must be a number between 1 and 100"
	MsgInvalidOffset  = "Offset must be a non-negative number"
	MsgInvalidID      = "ID must be a positive integer"
	MsgSportName      = "Sport name must be between 1 and 50 characters"

	MaxLimit = 100
)

var (
	validate = validator.New()
	limitTag = fmt.Sprintf("min=1,max=%d", MaxLimit)
)

// Result collects every rule violation found in a single pass
type Result struct {
	Errors []string `json:"errors"`
}

// IsValid reports whether no rule was violated
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *Result) add(msg string) {
	r.Errors = append(r.Errors, msg)
}

// FilterInput is the raw query string of a match listing. Sport keeps every
// occurrence of the parameter so repeated values can be rejected.
type FilterInput struct {
	Sport  []string
	Status string
	Limit  string
	Offset string
}

// ValidateMatchFilters checks the optional listing filters. Absent fields are
// not checked.
func ValidateMatchFilters(in FilterInput) Result {
	var result Result

	if len(in.Sport) > 1 {
		result.add(MsgSportNotString)
	}

	if in.Status != "" && !models.MatchStatus(in.Status).Valid() {
		result.add(MsgInvalidStatus)
	}

	if in.Limit != "" {
		limit, err := strconv.Atoi(in.Limit)
		if err != nil || validate.Var(limit, limitTag) != nil {
			result.add(MsgInvalidLimit)
		}
	}

	if in.Offset != "" {
		offset, err := strconv.Atoi(in.Offset)
		if err != nil || validate.Var(offset, "min=0") != nil {
			result.add(MsgInvalidOffset)
		}
	}

	return result
}

// ValidateID checks that raw is a positive integer
func ValidateID(raw string) Result {
	var result Result
	id, err := strconv.Atoi(raw)
	if err != nil || validate.Var(id, "gt=0") != nil {
		result.add(MsgInvalidID)
	}
	return result
}

// ParseID validates raw and returns it as an unsigned ID
func ParseID(raw string) (uint, bool) {
	if !ValidateID(raw).IsValid() {
		return 0, false
	}
	id, _ := strconv.Atoi(raw)
	return uint(id), true
}

// ValidateSportName checks a sport name taken from a path segment
func ValidateSportName(name string) Result {
	var result Result
	trimmed := strings.TrimSpace(name)
	if validate.Var(trimmed, "required,max=50") != nil {
		result.add(MsgSportName)
	}
	return result
}

// ValidateStatus checks a status taken from a path segment
func ValidateStatus(raw string) Result {
	var result Result
	if !models.MatchStatus(raw).Valid() {
		result.add(MsgInvalidStatus)
	}
	return result
}
