package types

import "github.com/arthur-debert/mklnk/pkg/errors"

// LinkRequest describes one link to create: the path where the link is
// materialized and the path it points to. A request is built once per
// invocation from CLI input and consumed by the link creator.
type LinkRequest struct {
	// Link is the path where the new link will be created. It must not
	// already exist.
	Link string
	// Target is the path the link resolves to.
	Target string
}

// Validate checks that both paths are present.
func (r LinkRequest) Validate() error {
	if r.Link == "" {
		return errors.New(errors.ErrInvalidInput, "link path must not be empty")
	}
	if r.Target == "" {
		return errors.New(errors.ErrInvalidInput, "target path must not be empty")
	}
	return nil
}
