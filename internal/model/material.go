package model

// Material kinds accepted in gig_materials.kind.
const (
    MaterialRehearsal   = "rehearsal"
    MaterialPerformance = "performance"
    MaterialCharts      = "charts"
    MaterialReference   = "reference"
    MaterialOther       = "other"
)

// Material is a link attached to a gig (charts, rehearsal tracks,
// reference recordings).  Rows are freely replaceable.
type Material struct {
    ID        string // gig_materials.id
    GigID     string // gig_materials.gig_id
    Label     string // gig_materials.label
    URL       string // gig_materials.url
    Kind      string // gig_materials.kind
    SortOrder *int   // gig_materials.sort_order
}
