package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techconnect/internal/clock"
)

// recordSink, gösterilen bildirimleri kaydeden test sink'idir.
type recordSink struct {
	mu      sync.Mutex
	visible *Notification
	shown   []Notification
}

func (rs *recordSink) Show(n Notification) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.visible = &n
	rs.shown = append(rs.shown, n)
}

func (rs *recordSink) Clear(id uint64) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.visible != nil && rs.visible.ID == id {
		rs.visible = nil
	}
}

func (rs *recordSink) current() *Notification {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.visible
}

func TestNotifyReplacesPrevious(t *testing.T) {
	sink := &recordSink{}
	sched := clock.NewManual()
	n := NewNotifier(sink, sched, 5*time.Second)

	n.Notify("A", SeverityInfo)
	n.Notify("B", SeverityError)

	cur := sink.current()
	require.NotNil(t, cur)
	assert.Equal(t, "B", cur.Message)
	assert.Equal(t, SeverityError, cur.Severity)
	assert.Len(t, sink.shown, 2)

	// A'nın zamanlayıcısı dolsa bile B'yi kapatmamalı
	sched.Advance(4 * time.Second)
	n.Notify("C", SeveritySuccess)
	sched.Advance(2 * time.Second) // A ve B'nin süresi geçti, C 2sn'de
	cur = sink.current()
	require.NotNil(t, cur)
	assert.Equal(t, "C", cur.Message)
}

func TestAutoDismiss(t *testing.T) {
	sink := &recordSink{}
	sched := clock.NewManual()
	n := NewNotifier(sink, sched, 5*time.Second)

	n.Notify("hello", SeverityInfo)
	require.NotNil(t, sink.current())

	sched.Advance(5 * time.Second)
	assert.Nil(t, sink.current())

	_, ok := n.Current()
	assert.False(t, ok)
}

func TestExplicitDismiss(t *testing.T) {
	sink := &recordSink{}
	sched := clock.NewManual()
	n := NewNotifier(sink, sched, 5*time.Second)

	n.Notify("hello", SeverityWarning)
	n.Dismiss()
	assert.Nil(t, sink.current())

	// Boşken Dismiss güvenli olmalı
	n.Dismiss()
}
