package orchestrator

import (
	"fmt"

	"github.com/hupe1980/screenmesh/core"
)

// transition binds a state's stage handler to its successor state. Handlers
// read the previous stage's output from the RunContext and write their own;
// the returned string is a short human summary for the run trace.
type transition struct {
	run  func(rc *core.RunContext) (string, error)
	next core.State
}

// buildTransitions returns the explicit state transition table. The screening
// path is Validating → Generating → Scoring → Ranking → Summarizing → Done;
// knowledge queries take AnsweringKnowledge → Done. Errored is reached from
// any state by the run loop when a handler fails.
func (o *Orchestrator) buildTransitions() map[core.State]transition {
	return map[core.State]transition{
		core.StateValidating:         {run: o.validate, next: core.StateGenerating},
		core.StateGenerating:         {run: o.generate, next: core.StateScoring},
		core.StateScoring:            {run: o.score, next: core.StateRanking},
		core.StateRanking:            {run: o.rank, next: core.StateSummarizing},
		core.StateSummarizing:        {run: o.summarize, next: core.StateDone},
		core.StateAnsweringKnowledge: {run: o.answerKnowledge, next: core.StateDone},
	}
}

func (o *Orchestrator) validate(rc *core.RunContext) (string, error) {
	target, err := o.validator.ValidateTarget(rc.Context, rc.EffectiveTarget)
	if err != nil {
		return "", err
	}
	rc.Target = target
	return "target " + target.String(), nil
}

func (o *Orchestrator) generate(rc *core.RunContext) (string, error) {
	library, warnings, err := o.generator.GenerateLibrary(rc.Context, rc.Target, rc.EffectiveSize, rc.Query.CustomCandidates)
	for _, w := range warnings {
		rc.AddWarning("%s", w)
	}
	if err != nil {
		return "", err
	}
	rc.Library = library
	return fmt.Sprintf("library of %d candidates", library.Size()), nil
}

func (o *Orchestrator) score(rc *core.RunContext) (string, error) {
	scored, err := o.scorer.ScoreLibrary(rc.Context, rc.Target, rc.Library)
	if err != nil {
		return "", err
	}
	rc.Scored = scored
	return fmt.Sprintf("%d candidates scored", len(scored)), nil
}

func (o *Orchestrator) rank(rc *core.RunContext) (string, error) {
	topN := rc.EffectiveTopN
	ranked, err := o.ranker.Rank(rc.Context, rc.Target, rc.Scored, topN)
	if err != nil {
		return "", err
	}
	rc.Ranked = ranked
	best, _ := ranked.Best()
	return fmt.Sprintf("top %d hits, best %s at %s", len(ranked.Candidates), best.ID, best.Score.String()), nil
}

func (o *Orchestrator) summarize(rc *core.RunContext) (string, error) {
	report, err := o.summarizer.Summarize(rc.Context, rc.RunID, rc.Ranked, rc.EffectiveTopN)
	if err != nil {
		return "", err
	}
	rc.Report = report
	return "report generated", nil
}

func (o *Orchestrator) answerKnowledge(rc *core.RunContext) (string, error) {
	answer, err := o.answerer.Answer(rc.Context, rc.Query.Question)
	if err != nil {
		return "", err
	}
	rc.Answer = answer
	return "question answered", nil
}
