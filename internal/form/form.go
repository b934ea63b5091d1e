package form

import (
	"unirate/internal/core"
	"unirate/pkg/schema"
)

// Form owns one survey draft and its validation error map. Edits mutate the
// draft in place without validation; Submit assigns a fresh identifier,
// validates the whole draft and either emits the finalized record to every
// subscriber or replaces the error map and emits nothing.
//
// A Form is not safe for concurrent use. All mutation happens on a single
// goroutine in response to discrete user events.
type Form struct {
	draft       schema.Draft
	errors      schema.ErrorMap
	ids         IDGenerator
	logger      core.Logger
	subscribers []func(schema.Record)
}

// New creates an empty form. ids must not be nil; logger may be nil, in
// which case a default info-level logger is used.
func New(ids IDGenerator, logger core.Logger) *Form {
	if logger == nil {
		logger = core.NewLogger("info")
	}
	return &Form{
		errors: make(schema.ErrorMap),
		ids:    ids,
		logger: logger,
	}
}

// Draft returns the mutable draft. Callers edit scalar fields directly;
// nothing is validated at edit time.
func (f *Form) Draft() *schema.Draft {
	return &f.draft
}

// SetRating overwrites one rating field on the draft. The UI constrains the
// input domain to 1-5, so the value is stored unchecked; Validate still
// catches anything out of range at submit time.
func (f *Form) SetRating(field schema.RatingField, value int) {
	f.draft.SetRating(field, value)
}

// Errors returns the error map produced by the most recent Submit. An empty
// map means the last attempt passed, or no attempt has been made yet.
func (f *Form) Errors() schema.ErrorMap {
	return f.errors
}

// OnSubmitted registers a subscriber for the submitted event. Subscribers
// run synchronously, in registration order, once per successful Submit.
func (f *Form) OnSubmitted(fn func(schema.Record)) {
	f.subscribers = append(f.subscribers, fn)
}

// Submit assigns a fresh unique identifier to the draft, runs full-schema
// validation and, when the draft is valid, emits the finalized record.
//
// On validation failure Submit returns (nil, nil): the error map is
// replaced with one message per failing field, no event fires and the
// draft keeps its current values so the respondent can correct and retry.
// A non-nil error is returned only for an identifier generator fault.
func (f *Form) Submit() (*schema.Record, error) {
	id, err := f.ids.Generate()
	if err != nil {
		return nil, &core.IdentifierError{Message: "generate submission id", Err: err}
	}
	f.draft.UniqueID = id

	f.errors = schema.Validate(&f.draft)
	if len(f.errors) > 0 {
		f.logger.Debug("submission rejected", "invalidFields", len(f.errors))
		return nil, nil
	}

	record := schema.Record(f.draft.Clone())
	for _, fn := range f.subscribers {
		fn(record)
	}

	f.logger.Info("survey submitted", "id", record.UniqueID, "school", record.SchoolName)
	return &record, nil
}

// Reset replaces the draft and error map with fresh empty ones, as when a
// new submission starts after a successful emit. Subscribers stay
// registered.
func (f *Form) Reset() {
	f.draft = schema.Draft{}
	f.errors = make(schema.ErrorMap)
}
