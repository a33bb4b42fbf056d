package backup

import (
	"fmt"

	"dentalclinic-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// Urutan kolom export itu kontrak dengan file backup lama, jangan diacak:
// users = (Name, Username, Role), appointments = (First Name, Last Name,
// Date, Time, Dental Procedure).

var userHeaders = []string{"Name", "Username", "Role"}
var appointmentHeaders = []string{"First Name", "Last Name", "Date", "Time", "Dental Procedure"}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func buildSheet(sheet string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportUsersExcel bikin dokumen xlsx dari record yang dikasih caller
func ExportUsersExcel(users []models.User) ([]byte, error) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Name, u.UserName, u.Role})
	}
	return buildSheet("Users", userHeaders, rows)
}

// ExportAppointmentsExcel bikin dokumen xlsx dari record yang dikasih
// caller (biasanya semua janji finished)
func ExportAppointmentsExcel(appts []models.Appointment) ([]byte, error) {
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, []string{
			a.FirstName, a.LastName, a.Date, a.Time, string(a.DentalProcedure),
		})
	}
	return buildSheet("Appointments", appointmentHeaders, rows)
}
