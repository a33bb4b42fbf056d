package backup

// Restorer dipenuhi AppointmentStore dan UserStore
type Restorer interface {
	Restore(id uint64) error
}

// RestoreOutcome hasil per record; restore massal itu best-effort
type RestoreOutcome struct {
	ID       uint64 `json:"id"`
	Restored bool   `json:"restored"`
	Error    string `json:"error,omitempty"`
}

// RestoreMany balikin record dari partisi deleted satu per satu.
// Tiap record atomik (satu UPDATE); yang gagal dicatat, sisanya lanjut.
// Record tidak pernah hilang dari partisi deleted kecuali reinstatement
// live-nya beneran sukses.
func RestoreMany(r Restorer, ids []uint64) []RestoreOutcome {
	out := make([]RestoreOutcome, 0, len(ids))
	for _, id := range ids {
		res := RestoreOutcome{ID: id, Restored: true}
		if err := r.Restore(id); err != nil {
			res.Restored = false
			res.Error = err.Error()
		}
		out = append(out, res)
	}
	return out
}
