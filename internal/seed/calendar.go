package seed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gh-life/internal/core"
)

// ErrNoColumns is returned when a calendar contains no day cells.
var ErrNoColumns = errors.New("calendar has no columns")

// InactiveFills are the day colors that mean "no contributions".
var InactiveFills = []string{"#eeeeee", "#ebedf0"}

// CalendarFile reads a contribution calendar SVG from disk.
func CalendarFile(path string) (core.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Snapshot{}, err
	}
	defer f.Close()
	return ParseCalendar(f)
}

// ParseCalendar reads a contribution calendar SVG. Every <g> with <rect>
// children is one week column, top to bottom. A short first column is padded
// with dead days at the top, any other short column at the bottom, so the
// result is always CalendarDepth rows tall.
func ParseCalendar(r io.Reader) (core.Snapshot, error) {
	columns, err := readColumns(r)
	if err != nil {
		return core.Snapshot{}, err
	}
	if len(columns) == 0 {
		return core.Snapshot{}, ErrNoColumns
	}

	snap := core.NewSnapshot(len(columns), core.CalendarDepth)
	for x, days := range columns {
		if len(days) > core.CalendarDepth {
			return core.Snapshot{}, fmt.Errorf("calendar column %d has %d days, max %d", x, len(days), core.CalendarDepth)
		}
		offset := 0
		if x == 0 {
			offset = core.CalendarDepth - len(days)
		}
		for i, alive := range days {
			if alive {
				snap.Cells[core.Cell{X: x, Y: offset + i}] = true
			}
		}
	}
	return snap, nil
}

func readColumns(r io.Reader) ([][]bool, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	// One entry per open element; -1 for anything that is not a <g>.
	var stack []int
	var columns [][]bool
	var order []int
	groups := map[int][]bool{}
	nextGroup := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse calendar: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "g":
				stack = append(stack, nextGroup)
				nextGroup++
			case "rect":
				if len(stack) > 0 && stack[len(stack)-1] >= 0 {
					id := stack[len(stack)-1]
					if _, seen := groups[id]; !seen {
						order = append(order, id)
					}
					groups[id] = append(groups[id], dayAlive(t.Attr))
				}
				stack = append(stack, -1)
			default:
				stack = append(stack, -1)
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	for _, id := range order {
		columns = append(columns, groups[id])
	}
	return columns, nil
}

func dayAlive(attrs []xml.Attr) bool {
	var fill string
	for _, a := range attrs {
		switch a.Name.Local {
		case "data-level":
			return strings.TrimSpace(a.Value) != "0"
		case "fill":
			fill = a.Value
		}
	}
	fill = strings.ToLower(strings.TrimSpace(fill))
	for _, inactive := range InactiveFills {
		if fill == inactive {
			return false
		}
	}
	return fill != ""
}
