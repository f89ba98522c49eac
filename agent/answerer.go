package agent

import (
	"context"
	"strconv"

	"github.com/hupe1980/screenmesh/core"
	"github.com/hupe1980/screenmesh/knowledge"
	"github.com/hupe1980/screenmesh/metrics"
)

// KnowledgeAnswerer serves knowledge questions from the static topic base.
// It never fails; unmatched questions get the fallback text.
type KnowledgeAnswerer struct {
	BaseStage
	base *knowledge.Base
}

var _ core.Answerer = (*KnowledgeAnswerer)(nil)

// NewKnowledgeAnswerer constructs the knowledge stage over the built-in base.
func NewKnowledgeAnswerer() *KnowledgeAnswerer {
	a := &KnowledgeAnswerer{
		BaseStage: NewBaseStage("KnowledgeAnswerer"),
		base:      knowledge.NewBase(),
	}
	a.SetDescription("Answers chemistry and pharmaceutical questions from the knowledge base")
	return a
}

// Answer returns the explanation text for the question.
func (a *KnowledgeAnswerer) Answer(_ context.Context, question string) (string, error) {
	matched := a.base.Match(question)
	metrics.KnowledgeQueriesTotal.WithLabelValues(strconv.FormatBool(matched != "")).Inc()
	a.Logger().Debug("knowledge question answered", "matched_topic", matched)
	return a.base.Answer(question), nil
}
