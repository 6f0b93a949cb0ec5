package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for errors.Is checks. The concrete error types below match
// their kind through an Is method, so callers never need to type-assert.
var (
	ErrLoad          = errors.New("workbook load failed")
	ErrNotFound      = errors.New("not found")
	ErrDataIntegrity = errors.New("data integrity violation")
)

// LoadError reports a workbook that is missing, unreadable or does not match
// the expected table layout. It is fatal at startup.
type LoadError struct {
	Path   string
	Sheet  string
	Column string
	Row    int // 1-based sheet row, 0 when not row specific
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load workbook %q", e.Path)
	if e.Sheet != "" {
		fmt.Fprintf(&b, ": sheet %q", e.Sheet)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// NotFoundError reports a lookup key that is absent from the catalog.
type NotFoundError struct {
	Kind string // "component" or "material"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DataIntegrityError reports a BOM row that references a material ID with no
// entry in the Materials table.
type DataIntegrityError struct {
	Component  string
	MaterialID string
	Row        int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("component %q: BOM row %d references unknown material %q",
		e.Component, e.Row, e.MaterialID)
}

func (e *DataIntegrityError) Is(target error) bool { return target == ErrDataIntegrity }
