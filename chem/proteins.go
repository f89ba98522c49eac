package chem

import "strings"

// Proteins maps known protein names to their canonical 4-character structure
// IDs. Lookups are case-insensitive via LookupProtein.
var Proteins = map[string]string{
	"EGFR":  "1A4G",
	"ACE2":  "6M0J",
	"BRAF":  "5VAM",
	"ALK":   "3LCS",
	"CDK2":  "1HCK",
	"VEGFR": "3V2A",
	"BCL2":  "2W3L",
	"HSP90": "3T0Z",
	"MTOR":  "4JT5",
	"PI3K":  "5XGH",
}

// LookupProtein resolves a protein name to its structure ID,
// case-insensitively. The second return reports whether the name is known.
func LookupProtein(name string) (string, bool) {
	id, ok := Proteins[strings.ToUpper(strings.TrimSpace(name))]
	return id, ok
}

// ProteinName reverse-looks-up the protein name for a structure ID. Returns
// "Unknown" when no table entry carries the ID.
func ProteinName(structureID string) string {
	id := strings.ToUpper(structureID)
	for name, sid := range Proteins {
		if sid == id {
			return name
		}
	}
	return "Unknown"
}
