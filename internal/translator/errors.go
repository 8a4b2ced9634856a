package translator

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/beichen-observer/models"
)

// ErrUnresolvedReference is matched by every [*ResolutionError].
var ErrUnresolvedReference = errors.New("unresolved reference")

// ResolutionError reports a display name that has no entity in the
// reference cache. Field is the display-format field that failed.
type ResolutionError struct {
	Field string
	Kind  models.ReferenceKind
	Name  string
}

func (e *ResolutionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("cannot resolve %s: no name given", e.Field)
	}
	return fmt.Sprintf("cannot resolve %s %q: no such %s", e.Field, e.Name, e.Kind)
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnresolvedReference
}
