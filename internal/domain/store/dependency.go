package store

import "context"

// DependencyCheck counts records of a dependent type that reference a parent entity.
// Checks are declared per entity in wiring order; the order is significant because
// deletion reports only the first dependent type found.
type DependencyCheck struct {
	DependentType string
	Count         func(ctx context.Context, parentID int64) (int64, error)
}

// FirstDependent runs the checks in declared order and returns the name of the
// first dependent type with at least one referencing record, or "" when the
// parent has no dependents and may be deleted.
func FirstDependent(ctx context.Context, parentID int64, checks []DependencyCheck) (string, error) {
	for _, check := range checks {
		n, err := check.Count(ctx, parentID)
		if err != nil {
			return "", err
		}
		if n > 0 {
			return check.DependentType, nil
		}
	}
	return "", nil
}
