package knowledge

import (
	"strings"
)

// Topic is one entry of the knowledge base: a stable key, the keywords that
// select it and the canned explanation returned on a match.
type Topic struct {
	Key      string
	Title    string
	Keywords []string
	Text     string
}

// Base answers questions from a fixed, ordered topic list. Matching walks the
// topics in order and returns the first whose keyword set hits the question,
// so earlier topics take precedence when keywords overlap (e.g. "drug target"
// before a bare "target" would). The zero Base is not usable; construct via
// NewBase.
type Base struct {
	topics []Topic
}

// NewBase returns a Base over the built-in drug-discovery topics.
func NewBase() *Base {
	return &Base{topics: builtinTopics()}
}

// Topics returns the topic list in precedence order. The slice is a copy.
func (b *Base) Topics() []Topic {
	out := make([]Topic, len(b.topics))
	copy(out, b.topics)
	return out
}

// Answer returns the explanation of the first topic whose keywords match the
// question (case-insensitive substring), or the fallback text when nothing
// matches. It never fails.
func (b *Base) Answer(question string) string {
	q := strings.ToLower(question)
	for _, topic := range b.topics {
		for _, kw := range topic.Keywords {
			if strings.Contains(q, kw) {
				return topic.Text
			}
		}
	}
	return b.fallback()
}

// Match reports the key of the topic that would answer the question, or ""
// when the fallback applies. Useful for tests and diagnostics.
func (b *Base) Match(question string) string {
	q := strings.ToLower(question)
	for _, topic := range b.topics {
		for _, kw := range topic.Keywords {
			if strings.Contains(q, kw) {
				return topic.Key
			}
		}
	}
	return ""
}

func (b *Base) fallback() string {
	var sb strings.Builder
	sb.WriteString("I don't have specific information about that topic in my knowledge base.\n\nAvailable topics include:\n")
	for _, topic := range b.topics {
		sb.WriteString("- ")
		sb.WriteString(topic.Title)
		sb.WriteString("\n")
	}
	sb.WriteString("\nPlease ask about one of these topics for detailed information.")
	return sb.String()
}
