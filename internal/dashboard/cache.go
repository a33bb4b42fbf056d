package dashboard

import (
	"sync"

	"dentalclinic-backend/internal/models"
)

// SnapshotCache nyimpen snapshot appointment terakhir hasil polling.
// Handler dashboard baca dari sini, jadi tiap request tidak query ulang;
// kesegaran data dibatasi interval poll (2 detik).
type SnapshotCache struct {
	mu    sync.RWMutex
	appts []models.Appointment
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

func (c *SnapshotCache) Set(appts []models.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appts = appts
}

// Snapshot balikin salinan, biar pembaca aman dari refresh berikutnya
func (c *SnapshotCache) Snapshot() []models.Appointment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Appointment, len(c.appts))
	copy(out, c.appts)
	return out
}
