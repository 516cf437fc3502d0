package enrich

// SourceType identifies one external enrichment collaborator.
type SourceType string

const (
	SourceCQCDetailed  SourceType = "cqc_detailed"
	SourceStaffData    SourceType = "staff_data"
	SourceFinancial    SourceType = "financial"
	SourceFSA          SourceType = "fsa"
	SourceGooglePlaces SourceType = "google_places"
)

// SourceTypes lists all known sources in a stable order.
var SourceTypes = []SourceType{
	SourceCQCDetailed,
	SourceStaffData,
	SourceFinancial,
	SourceFSA,
	SourceGooglePlaces,
}

// SourceSet is everything fetched for a single facility.
type SourceSet map[SourceType]Tree

// Source returns the tree for one source, or an empty Tree when the
// source never returned data. Lookups on the empty tree all report
// absence, which every calculator treats as "no information".
func (s SourceSet) Source(st SourceType) Tree {
	if s == nil {
		return Tree{}
	}
	if t, ok := s[st]; ok && t != nil {
		return t
	}
	return Tree{}
}

// Bundle maps facility id to its fetched sources. Read-only to the
// scoring engine.
type Bundle map[string]SourceSet

// For returns the source set for a facility, empty when the facility was
// never enriched.
func (b Bundle) For(facilityID string) SourceSet {
	if b == nil {
		return SourceSet{}
	}
	if s, ok := b[facilityID]; ok && s != nil {
		return s
	}
	return SourceSet{}
}
