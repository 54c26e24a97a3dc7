package model

// CatalogEntry describes one smell the analysis service looks for
type CatalogEntry struct {
	Category  string `json:"category" yaml:"category"`
	Smell     string `json:"smell" yaml:"smell"`
	Heuristic string `json:"heuristic" yaml:"heuristic"`
}

// Catalog lists the supported smells grouped by category, in display order
var Catalog = []CatalogEntry{
	{Category: "Bloaters", Smell: "Long Method", Heuristic: "> 40 lines (estimated)"},
	{Category: "Bloaters", Smell: "Large Class", Heuristic: "> 15 methods"},
	{Category: "Bloaters", Smell: "Data Clumps", Heuristic: "≥3 repeated params in ≥2 methods"},
	{Category: "OO Abusers", Smell: "Switch Statements", Heuristic: "> 5 cases"},
	{Category: "OO Abusers", Smell: "Refused Bequest", Heuristic: "Throws UnsupportedOperationException"},
	{Category: "Dispensables", Smell: "Duplicate Code", Heuristic: "Identical block > 6 lines"},
	{Category: "Dispensables", Smell: "Dead Code", Heuristic: "Unused private methods"},
	{Category: "Couplers", Smell: "Message Chains", Heuristic: "> 3 chained calls"},
	{Category: "Couplers", Smell: "Feature Envy", Heuristic: "Frequent foreign data usage"},
}

// CatalogRow is a catalogue entry with the category label blanked after its first row
type CatalogRow struct {
	CatalogEntry
	FirstInCategory bool
}

// CatalogRows returns Catalog ready for tabular display
func CatalogRows() []CatalogRow {
	rows := make([]CatalogRow, len(Catalog))
	prev := ""
	for i, e := range Catalog {
		rows[i] = CatalogRow{CatalogEntry: e, FirstInCategory: e.Category != prev}
		prev = e.Category
	}
	return rows
}
