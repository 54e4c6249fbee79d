package main

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func renderTable(w io.Writer, title string, header []string, rows [][]string) {
	color.New(color.FgYellow).Fprintln(w, title)
	if len(rows) == 0 {
		io.WriteString(w, "(none)\n")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func itoa(n int) string { return strconv.Itoa(n) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
