package agent

import (
	"fmt"

	"github.com/hupe1980/screenmesh/logging"
)

// BaseStage bundles the identity surface shared by all stage agents. Embed it
// in a concrete stage and implement the capability method to satisfy the
// corresponding core interface.
type BaseStage struct {
	name        string
	description string
	logger      logging.Logger
}

// NewBaseStage constructs a BaseStage with a generated description
// (customizable via SetDescription) and a no-op logger.
func NewBaseStage(name string) BaseStage {
	return BaseStage{
		name:        name,
		description: fmt.Sprintf("Stage %s", name),
		logger:      logging.NoOpLogger{},
	}
}

// Name returns the human-readable name for this stage.
func (b *BaseStage) Name() string { return b.name }

// Description returns a detailed description of this stage's purpose.
func (b *BaseStage) Description() string { return b.description }

// SetDescription updates the stage's description.
func (b *BaseStage) SetDescription(desc string) { b.description = desc }

// SetLogger replaces the stage logger. A nil logger restores the no-op.
func (b *BaseStage) SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NoOpLogger{}
	}
	b.logger = l
}

// Logger returns the stage logger, never nil.
func (b *BaseStage) Logger() logging.Logger { return b.logger }
