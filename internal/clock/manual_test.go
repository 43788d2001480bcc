package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualAdvanceRunsDueTimers(t *testing.T) {
	m := NewManual()
	var fired []string

	m.After(2*time.Second, func() { fired = append(fired, "b") })
	m.After(1*time.Second, func() { fired = append(fired, "a") })
	m.After(5*time.Second, func() { fired = append(fired, "c") })

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, m.Pending())

	m.Advance(3 * time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Zero(t, m.Pending())
}

func TestManualCallbackCanSchedule(t *testing.T) {
	m := NewManual()
	var fired int

	m.After(time.Second, func() {
		m.After(time.Second, func() { fired++ })
	})

	// İç zamanlayıcı aynı Advance içinde vadesi geldiyse çalışır
	m.Advance(2 * time.Second)
	assert.Equal(t, 1, fired)
}
