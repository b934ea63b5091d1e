package schema

// Draft represents the mutable working state of one in-progress survey
// submission. Every field may be edited freely; nothing is validated until
// the whole draft is passed to Validate.
type Draft struct {
	UniqueID           string              `json:"uniqueId" yaml:"uniqueId"`
	SchoolName         string              `json:"schoolName" yaml:"schoolName"`
	Sex                Sex                 `json:"sex" yaml:"sex"`
	Nationality        string              `json:"nationality" yaml:"nationality"`
	CurrentStudent     bool                `json:"currentStudent" yaml:"currentStudent"`
	YearOfStudy        string              `json:"yearOfStudy" yaml:"yearOfStudy"`
	NameOfStudy        string              `json:"nameOfStudy" yaml:"nameOfStudy"`
	Ratings            map[RatingField]int `json:"ratings" yaml:"ratings"`
	AdditionalComments string              `json:"additionalComments" yaml:"additionalComments"`
}

// Record is a draft that has passed full-schema validation and carries a
// freshly assigned unique identifier. Ownership transfers to whoever
// consumes the submitted event; the form never mutates an emitted record.
type Record Draft

// SetRating overwrites one rating field. The value is not range-checked
// here; out-of-range values are caught by Validate.
func (d *Draft) SetRating(field RatingField, value int) {
	if d.Ratings == nil {
		d.Ratings = make(map[RatingField]int, len(AllRatingFields))
	}
	d.Ratings[field] = value
}

// Rating returns the value of one rating field and whether it has been set.
func (d *Draft) Rating(field RatingField) (int, bool) {
	value, ok := d.Ratings[field]
	return value, ok
}

// Clone creates a deep copy of the draft.
func (d *Draft) Clone() Draft {
	clone := *d

	if d.Ratings != nil {
		clone.Ratings = make(map[RatingField]int, len(d.Ratings))
		for field, value := range d.Ratings {
			clone.Ratings[field] = value
		}
	}

	return clone
}
