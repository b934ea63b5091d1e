package schema

import (
	"fmt"
	"strconv"
)

// Field names as they appear in the validation error map. Rating fields use
// their RatingField value directly.
const (
	FieldSchoolName  = "schoolName"
	FieldSex         = "sex"
	FieldNationality = "nationality"
	FieldYearOfStudy = "yearOfStudy"
)

// ErrorMap maps a field name to a human-readable message. An absent key
// means the field is currently valid. The map is rebuilt from scratch on
// every validation attempt, never merged with a previous one.
type ErrorMap map[string]string

// Validate applies every field predicate to the draft and returns the
// resulting error map. All fields are checked; the map holds one message
// per failing field. An empty map means the draft is valid.
//
// yearOfStudy and nameOfStudy are not required even when currentStudent is
// true; a non-empty yearOfStudy must still parse as a number in range.
func Validate(d *Draft) ErrorMap {
	errs := make(ErrorMap)

	if d.SchoolName == "" {
		errs[FieldSchoolName] = "school name must not be empty"
	}

	if !d.Sex.Valid() {
		errs[FieldSex] = fmt.Sprintf("sex must be %q, %q or %q", SexMale, SexFemale, SexUndisclosed)
	}

	if d.Nationality == "" {
		errs[FieldNationality] = "nationality must not be empty"
	}

	if d.YearOfStudy != "" {
		year, err := strconv.Atoi(d.YearOfStudy)
		if err != nil || year < YearOfStudyMin || year > YearOfStudyMax {
			errs[FieldYearOfStudy] = fmt.Sprintf("year of study must be a number between %d and %d", YearOfStudyMin, YearOfStudyMax)
		}
	}

	// Ranges over the draft's own map rather than AllRatingFields so that
	// values injected under an unknown rating key are surfaced too.
	for field, value := range d.Ratings {
		if value < RatingMin || value > RatingMax {
			errs[string(field)] = fmt.Sprintf("rating must be between %d and %d", RatingMin, RatingMax)
		}
	}

	return errs
}
