package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/notify"
)

func TestToasterExpires(t *testing.T) {
	sched := clock.NewManual()
	toaster := NewToaster(sched, 3*time.Second)

	toaster.Notify(notify.Notification{Title: "first"})
	sched.Advance(time.Second)
	toaster.Notify(notify.Notification{Title: "second"})

	require.Len(t, toaster.Active(), 2)

	sched.Advance(2 * time.Second)
	active := toaster.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Title)

	sched.Advance(time.Second)
	assert.Empty(t, toaster.Active())
}

func TestToasterKeepsNewest(t *testing.T) {
	toaster := NewToaster(clock.NewManual(), time.Second)
	for _, title := range []string{"a", "b", "c", "d"} {
		toaster.Notify(notify.Notification{Title: title})
	}
	active := toaster.Active()
	require.Len(t, active, maxToasts)
	assert.Equal(t, "b", active[0].Title)
	assert.Equal(t, "d", active[2].Title)
}
