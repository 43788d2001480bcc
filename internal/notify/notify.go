package notify

import (
	"sync"
	"time"

	"techconnect/internal/clock"
	"techconnect/internal/telemetry"
)

// Severity, bildirim önem derecesidir.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification, kullanıcıya gösterilen geçici mesajdır.
type Notification struct {
	ID       uint64   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Sink, bildirimlerin gösterildiği sunum kapısıdır. Show her zaman
// ekrandakinin yerine geçer; Clear yalnızca hâlâ görünüyorsa gizler.
type Sink interface {
	Show(n Notification)
	Clear(id uint64)
}

// Notifier, aynı anda en fazla bir bildirim görünür kuralını uygular.
// Yeni bildirim öncekini anında değiştirir; her bildirim ttl sonunda
// kendiliğinden kapanır.
type Notifier struct {
	mu        sync.Mutex
	sink      Sink
	sched     clock.Scheduler
	ttl       time.Duration
	seq       uint64
	currentID uint64
	current   Notification
}

// NewNotifier, yeni bir Notifier örneği oluşturur.
func NewNotifier(sink Sink, sched clock.Scheduler, ttl time.Duration) *Notifier {
	return &Notifier{sink: sink, sched: sched, ttl: ttl}
}

// Notify, bildirimi gösterir ve otomatik kapanma zamanlayıcısını kurar.
func (n *Notifier) Notify(message string, severity Severity) {
	n.mu.Lock()
	n.seq++
	note := Notification{ID: n.seq, Message: message, Severity: severity}
	n.currentID = note.ID
	n.current = note
	n.mu.Unlock()

	telemetry.NotificationsShown.WithLabelValues(string(severity)).Inc()
	n.sink.Show(note)

	n.sched.After(n.ttl, func() {
		n.dismiss(note.ID)
	})
}

// Dismiss, görünen bildirimi kullanıcı isteğiyle kapatır.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	id := n.currentID
	n.mu.Unlock()
	if id != 0 {
		n.dismiss(id)
	}
}

// Current, ekranda duran bildirimi döndürür.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.currentID == 0 {
		return Notification{}, false
	}
	return n.current, true
}

// dismiss, bildirim bu arada değiştirildiyse hiçbir şey yapmaz.
func (n *Notifier) dismiss(id uint64) {
	n.mu.Lock()
	if n.currentID != id {
		n.mu.Unlock()
		return
	}
	n.currentID = 0
	n.current = Notification{}
	n.mu.Unlock()

	n.sink.Clear(id)
}
