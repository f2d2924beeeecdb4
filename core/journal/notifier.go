package journal

type Target string

const (
	TargetStudents Target = "students"
	TargetLogs     Target = "logs"
)

// Notifier forwards one changed record to the remote spreadsheet endpoint.
//
// Push returns before the request completes. A push is dispatched, never confirmed:
// success only means the request left without a transport error, not that the remote accepted it.
// A failed push is lost; implementations never retry nor queue.
// An empty endpoint means no remote is configured and Push does nothing.
type Notifier interface {
	Push(endpoint string, target Target, payload interface{})
}

type nopNotifier struct{}

// NopNotifier drops every push.
func NopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) Push(string, Target, interface{}) {}
