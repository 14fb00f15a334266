package employee

import (
	employeeerrors "go-workforce/internal/employee/errors"
)

// Affiliation is where an employee hangs in the org chart: directly under a
// division, inside a department, or nowhere. Exactly one variant holds at a
// time, so assigning a department structurally clears a division and vice
// versa instead of relying on handler discipline over two nullable columns.
type AffiliationKind int

const (
	AffiliationNone AffiliationKind = iota
	AffiliationDepartment
	AffiliationDivision
)

type Affiliation struct {
	kind AffiliationKind
	name string
}

func NoAffiliation() Affiliation {
	return Affiliation{kind: AffiliationNone}
}

func DepartmentAffiliation(name string) Affiliation {
	return Affiliation{kind: AffiliationDepartment, name: name}
}

func DivisionAffiliation(name string) Affiliation {
	return Affiliation{kind: AffiliationDivision, name: name}
}

func (a Affiliation) Kind() AffiliationKind { return a.kind }
func (a Affiliation) Name() string          { return a.name }

// columns flattens the union into the two nullable foreign keys the schema
// stores; at most one comes back non-nil.
func (a Affiliation) columns() (departmentName, divisionName *string) {
	switch a.kind {
	case AffiliationDepartment:
		name := a.name
		return &name, nil
	case AffiliationDivision:
		name := a.name
		return nil, &name
	default:
		return nil, nil
	}
}

// affiliationFromRequest builds the union from the two optional form fields,
// rejecting a submission that names both.
func affiliationFromRequest(departmentName, divisionName string) (Affiliation, error) {
	if departmentName != "" && divisionName != "" {
		return Affiliation{}, employeeerrors.ErrAmbiguousAffiliation
	}
	if departmentName != "" {
		return DepartmentAffiliation(departmentName), nil
	}
	if divisionName != "" {
		return DivisionAffiliation(divisionName), nil
	}
	return NoAffiliation(), nil
}
