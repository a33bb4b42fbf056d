package lifecycle

import (
	"fmt"
	"log"
	"time"

	"dentalclinic-backend/internal/apperrors"
	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/internal/notify"
	"dentalclinic-backend/internal/scheduler"
)

// Store adalah bagian appointment store yang dibutuhkan engine.
// Dibuat interface supaya bisa dites pakai fake in-memory.
type Store interface {
	Get(id uint64) (*models.Appointment, error)
	TransitionStatus(id uint64, from, to models.Status) error
	Reschedule(id uint64, newDate, newTime string) error
	Validator() *scheduler.Validator
}

// Engine menjaga state machine status janji temu:
// not confirmed -> confirmed -> finished, plus reschedule untuk no-show.
// Transisi yang diulang (confirm dua kali, finish yang sudah finished)
// selalu ditolak, bukan no-op diam-diam.
type Engine struct {
	store    Store
	notifier notify.Notifier
	now      func() time.Time
}

func New(store Store, notifier notify.Notifier, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Engine{store: store, notifier: notifier, now: now}
}

func (e *Engine) today() string {
	return e.now().Format(scheduler.DateLayout)
}

// Confirm: not confirmed -> confirmed. Notifikasi pasien dikirim tepat
// satu kali per transisi yang sukses; gagal kirim cuma dicatat, status
// tidak di-rollback (pengiriman di luar scope state machine).
func (e *Engine) Confirm(id uint64) (*models.Appointment, error) {
	a, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if a.Status != models.StatusNotConfirmed {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := e.store.TransitionStatus(id, models.StatusNotConfirmed, models.StatusConfirmed); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Hi %s %s, your appointment on %s at %s (%s) is confirmed.",
		a.FirstName, a.LastName, a.Date, a.Time, a.DentalProcedure)
	if err := e.notifier.Send(a.Contact, "Appointment Confirmed", body); err != nil {
		log.Printf("notify gagal untuk appointment %d: %v", id, err)
	}

	a.Status = models.StatusConfirmed
	return a, nil
}

// Finish: confirmed -> finished, hanya kalau tanggalnya sudah lewat
// atau hari ini (kunjungannya sudah terjadi).
func (e *Engine) Finish(id uint64) (*models.Appointment, error) {
	a, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if a.Status != models.StatusConfirmed {
		return nil, apperrors.ErrInvalidTransition
	}
	// Tanggal YYYY-MM-DD aman dibandingkan sebagai string
	if a.Date > e.today() {
		return nil, apperrors.ErrTooEarly
	}

	if err := e.store.TransitionStatus(id, models.StatusConfirmed, models.StatusFinished); err != nil {
		return nil, err
	}

	a.Status = models.StatusFinished
	return a, nil
}

// Reschedule menangani no-show: janji confirmed yang tanggalnya sudah
// kelewat boleh dipindah ke slot baru tanpa balik ke not confirmed.
// Slot baru divalidasi ulang, dengan slot lama dia sendiri dikecualikan
// dari cek bentrok. Kegagalan validator diteruskan apa adanya.
func (e *Engine) Reschedule(id uint64, newDate, newTime string) (*models.Appointment, error) {
	a, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if a.Status != models.StatusConfirmed {
		return nil, apperrors.ErrInvalidTransition
	}
	if a.Date >= e.today() {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := e.store.Validator().Validate(a.UserName, newDate, newTime, id); err != nil {
		return nil, err
	}

	if err := e.store.Reschedule(id, newDate, newTime); err != nil {
		return nil, err
	}

	a.Date = newDate
	a.Time = newTime
	return a, nil
}
