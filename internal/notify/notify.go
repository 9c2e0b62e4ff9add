// Package notify delivers player-facing notifications such as the welcome
// message and point awards. Delivery is fire-and-forget.
package notify

// Notification is a title with a detail line.
type Notification struct {
	Title  string
	Detail string
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(Notification) {}

// Func adapts a function to the Notifier interface.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Recorder keeps every notification it receives.
type Recorder struct {
	Notifications []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Notifications) == 0 {
		return Notification{}, false
	}
	return r.Notifications[len(r.Notifications)-1], true
}
