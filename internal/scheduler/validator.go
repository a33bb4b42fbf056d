package scheduler

import (
	"strings"
	"time"

	"dentalclinic-backend/internal/apperrors"
)

// DateLayout adalah format tanggal yang dikirim frontend (tanpa jam)
const DateLayout = "2006-01-02"

// Frontend kirim jam dalam dua bentuk: "02:00 PM" dari time picker,
// "14:00" dari form reschedule. Dua-duanya diterima.
var timeLayouts = []string{"15:04", "3:04 PM", "03:04 PM"}

// ConflictFn ngecek apakah user sudah punya janji aktif di tanggal itu.
// excludeID dipakai waktu reschedule supaya slot lama dia sendiri tidak
// dihitung sebagai bentrok.
type ConflictFn func(userName, date string, excludeID uint64) (bool, error)

// Validator aturan jadwal klinik. Stateless, cuma baca himpunan janji
// aktif lewat HasConflict.
type Validator struct {
	HasConflict ConflictFn
}

func New(hasConflict ConflictFn) *Validator {
	return &Validator{HasConflict: hasConflict}
}

// ParseDate parsing tanggal YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseTimeOfDay parsing jam, terima format 24 jam maupun AM/PM
func ParseTimeOfDay(s string) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, normalized)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Validate menjalankan aturan berurutan:
// 1. Hari Minggu klinik tutup -> closed_day
// 2. Jam praktek 09:00-12:59 dan 13:00-15:59 -> out_of_hours
// 3. Satu user maksimal satu janji aktif per tanggal -> conflict
func (v *Validator) Validate(userName, date, timeOfDay string, excludeID uint64) error {
	day, err := ParseDate(date)
	if err != nil {
		return apperrors.NewValidation(apperrors.ReasonBadInput)
	}
	if day.Weekday() == time.Sunday {
		return apperrors.NewValidation(apperrors.ReasonClosedDay)
	}

	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return apperrors.NewValidation(apperrors.ReasonBadInput)
	}
	hour := tod.Hour()
	if !((hour >= 9 && hour <= 12) || (hour >= 13 && hour <= 15)) {
		return apperrors.NewValidation(apperrors.ReasonOutOfHours)
	}

	if v.HasConflict != nil {
		taken, err := v.HasConflict(userName, date, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewValidation(apperrors.ReasonConflict)
		}
	}
	return nil
}
