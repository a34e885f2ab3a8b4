package payxgo

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/olekukonko/tablewriter"
)

// WriteCSVReport writes the final account snapshot, one row per client in
// the order given (callers pass Snapshot/Run output, already ascending by
// client id), amounts rendered to 4 decimal places.
func WriteCSVReport(w io.Writer, accounts []Account) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, a := range accounts {
		row := []string{
			strconv.FormatUint(uint64(a.ClientID), 10),
			a.Available.StringFixed(4),
			a.Held.StringFixed(4),
			a.Total().StringFixed(4),
			strconv.FormatBool(a.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePDFReport renders the snapshot as a tabular statement.
func WritePDFReport(w io.Writer, accounts []Account) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(40, 10, "Account statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []string{"client", "available", "held", "total", "locked"} {
		pdf.CellFormat(36, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, a := range accounts {
		pdf.CellFormat(36, 7, strconv.FormatUint(uint64(a.ClientID), 10), "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 7, a.Available.StringFixed(4), "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 7, a.Held.StringFixed(4), "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 7, a.Total().StringFixed(4), "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 7, strconv.FormatBool(a.Locked), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

// WriteSummary prints accept/reject totals for operators. It is diagnostic
// output, not part of the report proper.
func WriteSummary(w io.Writer, counts Counts) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"outcome", "count"})
	rows := [][2]string{
		{"accepted", strconv.FormatUint(counts.Accepted, 10)},
		{"duplicate transaction", strconv.FormatUint(counts.Duplicate, 10)},
		{"account locked", strconv.FormatUint(counts.Locked, 10)},
		{"insufficient funds", strconv.FormatUint(counts.Insufficient, 10)},
		{"unknown transaction", strconv.FormatUint(counts.Unknown, 10)},
		{"invalid dispute state", strconv.FormatUint(counts.InvalidState, 10)},
		{"malformed", strconv.FormatUint(counts.Malformed, 10)},
	}
	for _, r := range rows {
		table.Append([]string{r[0], r[1]})
	}
	table.SetFooter([]string{"rejected", strconv.FormatUint(counts.Rejected(), 10)})
	table.Render()
}
