package selfcheck

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("selfcheck: invalid config")

type Property string

const (
	PropertyRelocation    Property = "relocation"
	PropertySelfEquality  Property = "self-equality"
	PropertyCloneDistinct Property = "clone-distinct"
	PropertyUniqueness    Property = "uniqueness"
	PropertyTotalOrder    Property = "total-order"
	PropertyHash          Property = "hash"
	PropertyEndToEnd      Property = "end-to-end"
)

// Violation is a single failed property check.
type Violation struct {
	Property Property
	Detail   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Property, v.Detail)
}
