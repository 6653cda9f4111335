package tracking

import (
	"sync"
	"time"
)

// monotonicClock entrega timestamps no decrecientes aunque el reloj del SO
// retroceda (NTP, VM migrada). Dos llamadas en el mismo instante pueden
// devolver el mismo valor: el desempate lo da la secuencia de inserción (seq).
type monotonicClock struct {
	mu   sync.Mutex
	last time.Time
}

// Now devuelve la hora actual ajustada para no ser anterior a la última entregada.
func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UTC()
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}
