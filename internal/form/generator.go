package form

import (
	"github.com/google/uuid"

	"unirate/pkg/schema"
)

// IDGenerator produces unique submission identifiers. Implementations must
// keep the collision probability negligible across a session.
type IDGenerator interface {
	Generate() (string, error)
}

// GeneratorFunc adapts a plain function to the IDGenerator interface.
type GeneratorFunc func() (string, error)

func (f GeneratorFunc) Generate() (string, error) {
	return f()
}

// NanoidGenerator issues SUB-{nanoid} identifiers. This is the default.
type NanoidGenerator struct{}

func (NanoidGenerator) Generate() (string, error) {
	return schema.NewSubmissionID()
}

// UUIDGenerator issues random UUIDv4 identifiers, for deployments that
// prefer a standard format over nanoid.
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// GeneratorForScheme maps a configured ID scheme name to a generator.
// Unknown schemes fall back to nanoid.
func GeneratorForScheme(scheme string) IDGenerator {
	if scheme == "uuid" {
		return UUIDGenerator{}
	}
	return NanoidGenerator{}
}
