package schema

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestIDGeneration(t *testing.T) {
	id, err := NewSubmissionID()
	if err != nil {
		t.Fatalf("Failed to generate submission ID: %v", err)
	}
	if !strings.HasPrefix(id, "SUB-") {
		t.Errorf("Submission ID should start with SUB-, got %s", id)
	}
	if len(strings.TrimPrefix(id, "SUB-")) != 10 {
		t.Errorf("Nanoid portion should be 10 characters")
	}
}

func TestIDCollisionResistance(t *testing.T) {
	// Generate 10,000 IDs and check for collisions
	ids := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id, err := NewSubmissionID()
		if err != nil {
			t.Fatalf("Failed to generate ID: %v", err)
		}
		if ids[id] {
			t.Fatalf("Collision detected after %d iterations: %s", i, id)
		}
		ids[id] = true
	}
}

func TestValidateEmptyDraft(t *testing.T) {
	errs := Validate(&Draft{})

	if _, ok := errs[FieldSchoolName]; !ok {
		t.Error("Empty draft should report schoolName")
	}
	if _, ok := errs[FieldNationality]; !ok {
		t.Error("Empty draft should report nationality")
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateMinimalValidDraft(t *testing.T) {
	draft := &Draft{
		SchoolName:  "Acme University",
		Nationality: "Dutch",
	}

	if errs := Validate(draft); len(errs) != 0 {
		t.Errorf("Minimal draft should validate, got %v", errs)
	}
}

func TestValidateRatingBounds(t *testing.T) {
	tests := []struct {
		name  string
		value int
		valid bool
	}{
		{"lowest", 1, true},
		{"highest", 5, true},
		{"below range", 0, false},
		{"above range", 7, false},
		{"negative", -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &Draft{SchoolName: "X", Nationality: "Y"}
			draft.SetRating(RatingQualityOfTeaching, tt.value)

			errs := Validate(draft)
			_, failed := errs[string(RatingQualityOfTeaching)]
			if tt.valid && failed {
				t.Errorf("Rating %d should be valid, got %v", tt.value, errs)
			}
			if !tt.valid && !failed {
				t.Errorf("Rating %d should fail validation", tt.value)
			}
			if !tt.valid && len(errs) != 1 {
				t.Errorf("Only the rating should fail, got %v", errs)
			}
		})
	}
}

func TestValidateInjectedRatingKey(t *testing.T) {
	// Out-of-range value written directly under an unknown key must still
	// be surfaced.
	draft := &Draft{
		SchoolName:  "X",
		Nationality: "Y",
		Ratings:     map[RatingField]int{"parking": 42},
	}

	errs := Validate(draft)
	if _, ok := errs["parking"]; !ok {
		t.Errorf("Injected rating key should fail validation, got %v", errs)
	}
}

func TestValidateYearOfStudy(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		valid bool
	}{
		{"unset", "", true},
		{"first year", "1", true},
		{"last year", "8", true},
		{"zero", "0", false},
		{"too high", "9", false},
		{"not a number", "second", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &Draft{
				SchoolName:     "X",
				Nationality:    "Y",
				CurrentStudent: true,
				YearOfStudy:    tt.year,
			}

			errs := Validate(draft)
			_, failed := errs[FieldYearOfStudy]
			if tt.valid && failed {
				t.Errorf("Year %q should be valid, got %v", tt.year, errs)
			}
			if !tt.valid && !failed {
				t.Errorf("Year %q should fail validation", tt.year)
			}
		})
	}
}

func TestValidateCurrentStudentFieldsNotRequired(t *testing.T) {
	// A current student with empty yearOfStudy/nameOfStudy still validates.
	draft := &Draft{
		SchoolName:     "Acme University",
		Nationality:    "Dutch",
		CurrentStudent: true,
	}

	if errs := Validate(draft); len(errs) != 0 {
		t.Errorf("Current student draft without study fields should validate, got %v", errs)
	}
}

func TestValidateSexEnum(t *testing.T) {
	draft := &Draft{SchoolName: "X", Nationality: "Y", Sex: "other"}

	errs := Validate(draft)
	if _, ok := errs[FieldSex]; !ok {
		t.Errorf("Unknown sex value should fail validation, got %v", errs)
	}

	for _, sex := range []Sex{SexMale, SexFemale, SexUndisclosed, SexUnset} {
		draft.Sex = sex
		if errs := Validate(draft); len(errs) != 0 {
			t.Errorf("Sex %q should be valid, got %v", sex, errs)
		}
	}
}

func TestValidateIdempotent(t *testing.T) {
	draft := &Draft{Nationality: "Dutch", YearOfStudy: "12"}
	draft.SetRating(RatingSafety, 9)

	first := Validate(draft)
	second := Validate(draft)

	if len(first) != len(second) {
		t.Fatalf("Repeated validation changed error count: %v vs %v", first, second)
	}
	for field, msg := range first {
		if second[field] != msg {
			t.Errorf("Message for %s changed: %q vs %q", field, msg, second[field])
		}
	}
}

func TestDraftClone(t *testing.T) {
	draft := &Draft{
		SchoolName:  "Acme University",
		Nationality: "Dutch",
	}
	draft.SetRating(RatingLocation, 4)

	clone := draft.Clone()
	clone.SetRating(RatingLocation, 1)
	clone.SchoolName = "Other"

	if value, _ := draft.Rating(RatingLocation); value != 4 {
		t.Errorf("Clone should not share the ratings map, got %d", value)
	}
	if draft.SchoolName != "Acme University" {
		t.Errorf("Clone should not share scalar fields")
	}
}

func TestDraftYAMLRoundTrip(t *testing.T) {
	draft := Draft{
		UniqueID:           "SUB-abc123defg",
		SchoolName:         "Acme University",
		Sex:                SexFemale,
		Nationality:        "Dutch",
		CurrentStudent:     true,
		YearOfStudy:        "3",
		NameOfStudy:        "Computer Science",
		AdditionalComments: "Great campus",
	}
	draft.SetRating(RatingFacilities, 5)

	data, err := yaml.Marshal(draft)
	if err != nil {
		t.Fatalf("Failed to marshal draft to YAML: %v", err)
	}

	var loaded Draft
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Failed to unmarshal draft from YAML: %v", err)
	}

	if loaded.SchoolName != draft.SchoolName {
		t.Errorf("SchoolName mismatch: got %s, want %s", loaded.SchoolName, draft.SchoolName)
	}
	if value, ok := loaded.Rating(RatingFacilities); !ok || value != 5 {
		t.Errorf("Ratings mismatch after round trip: %v", loaded.Ratings)
	}
}
