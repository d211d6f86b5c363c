package quiz

// DefaultMaxQuestionsPerSession is the number of questions served in one quiz
// before the session ends.
const DefaultMaxQuestionsPerSession = 5

// Params defines the session policy applied by the selector.
type Params struct {
	// MaxQuestionsPerSession caps how many questions one session may receive.
	MaxQuestionsPerSession int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MaxQuestionsPerSession: DefaultMaxQuestionsPerSession,
	}
}

// Validate reports whether the params describe a usable policy.
func (p *Params) Validate() error {
	if p == nil || p.MaxQuestionsPerSession < 1 {
		return ErrInvalidParams
	}
	return nil
}
