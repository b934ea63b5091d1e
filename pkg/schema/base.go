package schema

// Sex represents the respondent's self-reported sex.
type Sex string

const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexUndisclosed Sex = "prefer not to say"
	SexUnset       Sex = "" // respondent left the field untouched
)

// Valid reports whether the value is a known enum member.
func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUndisclosed, SexUnset:
		return true
	default:
		return false
	}
}

// RatingField identifies one of the 1-5 rating questions on the survey.
type RatingField string

const (
	RatingQualityOfTeaching                        RatingField = "qualityOfTeaching"
	RatingSafety                                   RatingField = "safety"
	RatingLocation                                 RatingField = "location"
	RatingSocialEvents                             RatingField = "socialEvents"
	RatingFacilities                               RatingField = "facilities"
	RatingCourseContent                            RatingField = "courseContent"
	RatingHousingAndAccommodation                  RatingField = "housingAndAccommodation"
	RatingInternationalFocus                       RatingField = "internationalFocus"
	RatingMentalHealthAndWellnessServices          RatingField = "mentalHealthAndWellnessServices"
	RatingCareerServicesAndInternshipOpportunities RatingField = "careerServicesAndInternshipOpportunities"
)

// AllRatingFields lists every rating question in display order.
var AllRatingFields = []RatingField{
	RatingQualityOfTeaching,
	RatingSafety,
	RatingLocation,
	RatingSocialEvents,
	RatingFacilities,
	RatingCourseContent,
	RatingHousingAndAccommodation,
	RatingInternationalFocus,
	RatingMentalHealthAndWellnessServices,
	RatingCareerServicesAndInternshipOpportunities,
}

// ValidationLimits defines the constraints for various fields.
const (
	RatingMin      = 1
	RatingMax      = 5
	YearOfStudyMin = 1
	YearOfStudyMax = 8
)
