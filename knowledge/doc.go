// Package knowledge implements the static topic base behind knowledge
// queries. It matches free-text questions against a fixed set of
// drug-discovery topics via case-insensitive keyword matching and always
// returns text: unmatched questions get a fallback listing the known topics.
package knowledge
