package chem

// Catalog is the fixed mock candidate catalog: 30 small-molecule SMILES
// strings the library generator samples from. Order matters — deterministic
// sampling hashes each entry against the target and breaks hash ties by
// catalog index, so reordering entries would change generated libraries.
var Catalog = []string{
	"CCO",                      // Ethanol
	"c1ccccc1",                 // Benzene
	"CC(=O)O",                  // Acetic acid
	"CC(C)O",                   // Isopropanol
	"c1ccc(O)cc1",              // Phenol
	"CC(=O)Nc1ccccc1",          // Acetanilide
	"CC(C)(C)O",                // tert-Butanol
	"c1ccc(cc1)C(=O)O",         // Benzoic acid
	"CCN(CC)CC",                // Triethylamine
	"C1CCCCC1",                 // Cyclohexane
	"c1ccc(cc1)N",              // Aniline
	"CC(=O)OC",                 // Methyl acetate
	"c1ccc(cc1)Cl",             // Chlorobenzene
	"CCOC(=O)C",                // Ethyl acetate
	"c1ccc(cc1)[N+](=O)[O-]",   // Nitrobenzene
	"CC(C)CC",                  // Isopentane
	"c1ccc(cc1)C",              // Toluene
	"CC(=O)N",                  // Acetamide
	"c1ccc(cc1)OC",             // Anisole
	"CCCCC",                    // Pentane
	"C1CCC(CC1)O",              // Cyclohexanol
	"c1ccc2c(c1)cccc2",         // Naphthalene
	"CC(C)C(=O)O",              // Isobutyric acid
	"c1ccc(cc1)F",              // Fluorobenzene
	"CCCCCO",                   // 1-Pentanol
	"c1ccc(cc1)Br",             // Bromobenzene
	"CC(C)C",                   // Propane
	"c1ccc(cc1)I",              // Iodobenzene
	"CCOCC",                    // Diethyl ether
	"c1ccc(cc1)CC",             // Ethylbenzene
}

// CatalogSize returns the number of catalog entries. The configured maximum
// library size must never exceed it.
func CatalogSize() int { return len(Catalog) }
