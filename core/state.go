package core

// State identifies a node in the pipeline workflow state machine. The
// orchestrator drives runs through an explicit transition table over these
// states; they double as trace labels in RunResult diagnostics.
type State string

const (
	StateIdle               State = "idle"
	StateValidating         State = "validating"
	StateGenerating         State = "generating"
	StateScoring            State = "scoring"
	StateRanking            State = "ranking"
	StateSummarizing        State = "summarizing"
	StateAnsweringKnowledge State = "answering_knowledge"
	StateDone               State = "done"
	StateErrored            State = "errored"
)

// AllStates returns every state in pipeline order, screening path first.
func AllStates() []State {
	return []State{
		StateIdle,
		StateValidating,
		StateGenerating,
		StateScoring,
		StateRanking,
		StateSummarizing,
		StateAnsweringKnowledge,
		StateDone,
		StateErrored,
	}
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool { return s == StateDone || s == StateErrored }

// String returns the state's wire label.
func (s State) String() string { return string(s) }
