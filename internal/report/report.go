package report

import (
	"strings"

	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/internal/scheduler"
)

// Package report bikin proyeksi read-only dari janji yang sudah finished.
// Semua grouping pakai urutan first-seen, bukan alfabetis atau kronologis;
// frontend report memang menampilkan urutan kemunculan data.

const monthLabelLayout = "January 2006"

type Patient struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// GroupByPatient ambil pasangan (firstName, lastName) unik, urut first-seen
func GroupByPatient(appts []models.Appointment) []Patient {
	seen := make(map[Patient]bool)
	var out []Patient
	for _, a := range appts {
		p := Patient{FirstName: a.FirstName, LastName: a.LastName}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// MonthsForPatient ambil label bulan unik ("June 2024") urut first-seen.
// Sengaja TIDAK di-sort kronologis; urutannya properti yang dites.
func MonthsForPatient(appts []models.Appointment) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range appts {
		d, err := scheduler.ParseDate(a.Date)
		if err != nil {
			continue
		}
		label := d.Format(monthLabelLayout)
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

// FilterByMonth saring per "YYYY-MM"; filter kosong = pass-through
func FilterByMonth(appts []models.Appointment, month string) []models.Appointment {
	if month == "" {
		return appts
	}
	var out []models.Appointment
	for _, a := range appts {
		if strings.HasPrefix(a.Date, month+"-") {
			out = append(out, a)
		}
	}
	return out
}

// FilterByProcedure saring per tindakan; filter kosong = pass-through
func FilterByProcedure(appts []models.Appointment, procedure string) []models.Appointment {
	if procedure == "" {
		return appts
	}
	var out []models.Appointment
	for _, a := range appts {
		if string(a.DentalProcedure) == procedure {
			out = append(out, a)
		}
	}
	return out
}

// DistinctProcedures isi dropdown filter: tindakan non-blank, urut first-seen
func DistinctProcedures(appts []models.Appointment) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range appts {
		p := strings.TrimSpace(string(a.DentalProcedure))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
