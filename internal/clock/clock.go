package clock

import "time"

// Scheduler, gecikmeli geri çağrıları planlar. Sahte ağ gecikmeleri ve
// bildirim zamanlayıcıları bunun üzerinden çalışır; testler Manual ile
// zamanı elle ilerletir.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// System, gerçek zamanlayıcı kullanan Scheduler uygulamasıdır.
type System struct{}

func (System) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
