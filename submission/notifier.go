package submission

// Severity classifies a notification for presentation purposes.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives user-facing notifications. Implementations are
// fire-and-forget: the pipeline never inspects a result.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, description string, severity Severity)

func (f NotifierFunc) Notify(title, description string, severity Severity) {
	f(title, description, severity)
}

// NopNotifier discards all notifications. Used when no presenter is wired.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string, Severity) {}
