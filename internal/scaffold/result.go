package scaffold

// Outcome classifies how a step ended.
type Outcome int

const (
	Success Outcome = iota
	Warning
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// StepResult is the typed result of a pipeline step. Err is nil on Success.
type StepResult struct {
	Outcome Outcome
	Err     error
}

func succeeded() StepResult { return StepResult{Outcome: Success} }

func warned(err error) StepResult { return StepResult{Outcome: Warning, Err: err} }

func failed(err error) StepResult {
	if err == nil {
		return succeeded()
	}
	return StepResult{Outcome: Fatal, Err: err}
}
