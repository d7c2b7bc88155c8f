// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     render
// Description: Terminal rendering of registry snapshots
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/exfc/pkg/exception"
)

// Column indexes of the record table
const (
	colIndex = iota
	colID
	colName
	colDescription
)

var headers = []string{"#", "ID", "NAME", "DESCRIPTION"}

// Renderer writes registry data either as styled tables or as plain
// tab-separated lines for scripts.
type Renderer struct {
	out   io.Writer
	plain bool
}

// New creates a renderer writing to out
func New(out io.Writer, plain bool) *Renderer {
	return &Renderer{out: out, plain: plain}
}

// Plain reports whether styling is disabled
func (r *Renderer) Plain() bool {
	return r.plain
}

// Records writes a snapshot. Row numbers are slot indexes, which equal list
// positions because snapshots are compacted.
func (r *Renderer) Records(title string, records []exception.Record) error {
	if r.plain {
		return r.plainRecords(records)
	}

	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(rec.ID),
			rec.Name,
			rec.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == colID:
				return IDCellStyle
			case col == colIndex || col == colDescription:
				return MutedCellStyle
			default:
				return CellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	if title != "" {
		if _, err := fmt.Fprintln(r.out, TitleStyle.Render(title)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.out, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out, HintStyle.Render(fmt.Sprintf("%d record(s)", len(records))))
	return err
}

func (r *Renderer) plainRecords(records []exception.Record) error {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for i, rec := range records {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i, rec.ID, rec.Name, rec.Description)
	}
	return w.Flush()
}

// Record writes a single record found at index
func (r *Renderer) Record(index int, rec exception.Record) error {
	if r.plain {
		_, err := fmt.Fprintf(r.out, "%d\t%d\t%s\t%s\n", index, rec.ID, rec.Name, rec.Description)
		return err
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render("name")+" "+rec.Name,
		LabelStyle.Render("id")+" "+IDCellStyle.UnsetPadding().Render(strconv.Itoa(rec.ID)),
		LabelStyle.Render("slot")+" "+strconv.Itoa(index),
	)
	if rec.Description != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, MutedCellStyle.UnsetPadding().Render(rec.Description))
	}

	_, err := fmt.Fprintln(r.out, CardStyle.Render(body))
	return err
}

// Success writes a confirmation line
func (r *Renderer) Success(format string, args ...interface{}) {
	r.line(SuccessStyle, format, args...)
}

// Failure writes an error line
func (r *Renderer) Failure(format string, args ...interface{}) {
	r.line(ErrorStyle, format, args...)
}

// Info writes a neutral line
func (r *Renderer) Info(format string, args ...interface{}) {
	r.line(HintStyle, format, args...)
}

func (r *Renderer) line(style lipgloss.Style, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !r.plain {
		msg = style.Render(msg)
	}
	fmt.Fprintln(r.out, msg)
}
