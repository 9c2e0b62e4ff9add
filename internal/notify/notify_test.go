package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderLast(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	var n Notifier = &r
	n.Notify(Notification{Title: "one"})
	n.Notify(Notification{Title: "two", Detail: "d"})

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, Notification{Title: "two", Detail: "d"}, last)
	assert.Len(t, r.Notifications, 2)
}

func TestFunc(t *testing.T) {
	var got []string
	var n Notifier = Func(func(n Notification) { got = append(got, n.Title) })
	n.Notify(Notification{Title: "hi"})
	Nop{}.Notify(Notification{Title: "ignored"})
	assert.Equal(t, []string{"hi"}, got)
}
