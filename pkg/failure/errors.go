package failure

type Severity int

// how far a failure is allowed to travel before the run stops
const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

type ClassifiedError interface {
	error
	Severity() Severity
}
