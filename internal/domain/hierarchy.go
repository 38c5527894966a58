package domain

// State is the top of the institution hierarchy.
type State struct {
	Code string
	Name string
}

type District struct {
	RecID int64
	Guid  string
	Name  string
	State *State
}

type School struct {
	RecID    int64
	Guid     string
	Name     string
	Type     string
	District *District

	// TakesInterims marks schools that administer interim assessments in
	// addition to the summative.
	TakesInterims bool
}

// InstitutionHierarchy is the denormalized state/district/school row used by
// the dim_hier output and the XML path derivation.
type InstitutionHierarchy struct {
	RecID    int64
	Guid     string
	State    *State
	District *District
	School   *School
}
