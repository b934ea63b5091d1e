package schema

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewSubmissionID generates a new submission ID in format SUB-{nanoid(10)}.
func NewSubmissionID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SUB-%s", id), nil
}
