// Package chem holds the fixed chemistry reference data the screening
// pipeline consults: the protein name to structure-ID table, the mock SMILES
// candidate catalog, the SMILES notation character set, and the portable
// hash used for deterministic sampling and scoring.
//
// Everything in this package is static and pure. No entry is ever computed
// from real chemistry; the data exists so the pipeline has a stable,
// reproducible vocabulary to screen against.
package chem
