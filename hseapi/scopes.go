package hseapi

import "strings"

// SearchScope restricts which record types a fuzzy search considers.
type SearchScope string

const (
	ScopeStudent       SearchScope = "student"
	ScopeStaff         SearchScope = "staff"
	ScopeExternalStaff SearchScope = "external_staff"
	ScopeAuditorium    SearchScope = "auditorium"
	ScopeGroup         SearchScope = "group"
	ScopeCourse        SearchScope = "course"
	ScopeService       SearchScope = "service"

	// ScopeAll means the union of all scopes. It is never sent literally;
	// it serializes as the comma-joined list of the scopes above.
	ScopeAll SearchScope = "all"
)

var searchScopes = []SearchScope{
	ScopeStudent,
	ScopeStaff,
	ScopeExternalStaff,
	ScopeAuditorium,
	ScopeGroup,
	ScopeCourse,
	ScopeService,
}

// Valid reports whether s is one of the enumerated search scopes.
// ScopeAll and the empty scope are handled by the caller, not here.
func (s SearchScope) Valid() bool {
	switch s {
	case ScopeStudent, ScopeStaff, ScopeExternalStaff, ScopeAuditorium, ScopeGroup, ScopeCourse, ScopeService:
		return true
	}
	return false
}

func allScopesParam() string {
	scopes := make([]string, 0, len(searchScopes))
	for _, s := range searchScopes {
		scopes = append(scopes, string(s))
	}
	return strings.Join(scopes, ",")
}
