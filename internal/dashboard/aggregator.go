package dashboard

import (
	"sort"
	"time"

	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/internal/scheduler"
)

// Counts ringkasan kartu di dashboard admin
type Counts struct {
	Total        int `json:"total"`
	NotConfirmed int `json:"notConfirmed"`
	Confirmed    int `json:"confirmed"`
	Finished     int `json:"finished"`
}

type ProcedureCount struct {
	Procedure models.Procedure `json:"procedure"`
	Count     int              `json:"count"`
}

func sameMonth(date string, ref time.Time) bool {
	d, err := scheduler.ParseDate(date)
	if err != nil {
		return false
	}
	return d.Year() == ref.Year() && d.Month() == ref.Month()
}

// CountsForMonth hitung janji live yang jatuh di bulan/tahun referensi
func CountsForMonth(appts []models.Appointment, ref time.Time) Counts {
	var c Counts
	for _, a := range appts {
		if !sameMonth(a.Date, ref) {
			continue
		}
		c.Total++
		switch a.Status {
		case models.StatusNotConfirmed:
			c.NotConfirmed++
		case models.StatusConfirmed:
			c.Confirmed++
		case models.StatusFinished:
			c.Finished++
		}
	}
	return c
}

// TopProcedures tally tindakan per bulan, urut turun berdasarkan count.
// Sort-nya stable: kalau count sama, yang duluan muncul di input menang.
func TopProcedures(appts []models.Appointment, ref time.Time, limit int) []ProcedureCount {
	index := make(map[models.Procedure]int)
	var tally []ProcedureCount

	for _, a := range appts {
		if a.DentalProcedure == "" || !sameMonth(a.Date, ref) {
			continue
		}
		i, seen := index[a.DentalProcedure]
		if !seen {
			index[a.DentalProcedure] = len(tally)
			tally = append(tally, ProcedureCount{Procedure: a.DentalProcedure})
			i = len(tally) - 1
		}
		tally[i].Count++
	}

	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Count > tally[j].Count
	})

	if limit > 0 && len(tally) > limit {
		tally = tally[:limit]
	}
	return tally
}
