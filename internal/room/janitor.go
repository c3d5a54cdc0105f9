package room

import (
	"time"

	"github.com/sirupsen/logrus"
)

// SweepExpired deletes every room older than the retention window, measured
// against the given time. Expiry keys off creation time only; a room that is
// still active past the window is deleted all the same. Returns the number of
// rooms removed. The sweep is driven by an external scheduler, it does not
// schedule itself.
func (reg *Registry) SweepExpired(now time.Time) int {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	count := 0
	for code, r := range reg.store.List() {
		age := now.Sub(r.CreatedAt)
		if age > reg.Retention {
			reg.store.Delete(code)
			count++
			reg.logger.WithFields(logrus.Fields{
				"room": code,
				"age":  age.Round(time.Minute).String(),
			}).Info("expired room removed")
		}
	}
	return count
}
