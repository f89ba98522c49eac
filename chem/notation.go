package chem

// ValidNotation reports whether s is a syntactically plausible SMILES
// notation: non-empty and composed entirely of characters from the SMILES
// character set. This is a charset check, not a parser — ring-closure and
// valence correctness are out of scope for a mock pipeline.
func ValidNotation(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !validNotationByte(s[i]) {
			return false
		}
	}
	return true
}

func validNotationByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '(', ')', '[', ']', '=', '#', '+', '-', '@', '/', '\\', '%', '.', ':', '*':
		return true
	}
	return false
}
