// Package export flattens attendance records into tabular CSV output.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/workpulse/attendance-system/internal/core/domain"
)

// ErrFormat wraps any failure while producing CSV output.
var ErrFormat = errors.New("export formatting failed")

const missingCheckOut = "N/A"

// header is the fixed column order of the report.
var header = []string{
	"employeeId",
	"name",
	"email",
	"department",
	"date",
	"checkInTime",
	"checkOutTime",
	"totalHours",
	"status",
}

// WriteCSV streams records to w as a CSV report: one header line plus one
// row per record. Records missing their employee snapshot (the owner was
// deleted after the record was written) are skipped rather than aborting
// the whole export; the skip count is returned so callers can flag it.
func WriteCSV(w io.Writer, records []*domain.AttendanceRecord) (written, skipped int, err error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return 0, 0, fmt.Errorf("%w: write header: %v", ErrFormat, err)
	}

	for _, rec := range records {
		if rec.Employee.EmployeeID == "" || rec.Employee.Name == "" {
			skipped++
			continue
		}

		checkOut := missingCheckOut
		if rec.CheckOutTime != nil {
			checkOut = rec.CheckOutTime.Format("15:04:05")
		}

		row := []string{
			rec.Employee.EmployeeID,
			rec.Employee.Name,
			rec.Employee.Email,
			rec.Employee.Department,
			rec.Date.Format("2006-01-02"),
			rec.CheckInTime.Format("15:04:05"),
			checkOut,
			strconv.FormatFloat(rec.TotalHours, 'f', 2, 64),
			string(rec.Status),
		}
		if err := cw.Write(row); err != nil {
			return written, skipped, fmt.Errorf("%w: write row: %v", ErrFormat, err)
		}
		written++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, skipped, fmt.Errorf("%w: flush: %v", ErrFormat, err)
	}
	return written, skipped, nil
}
