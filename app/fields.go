package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mathgraph/graph/plot"
	"mathgraph/internal/config"
)

type fieldID int

const (
	fieldExpr fieldID = iota
	fieldXMin
	fieldXMax
	fieldYMin
	fieldYMax
	fieldColor
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldExpr:  "f(x)=",
	fieldXMin:  "x:",
	fieldXMax:  "..",
	fieldYMin:  "y:",
	fieldYMax:  "..",
	fieldColor: "color:",
}

var fieldNames = [fieldCount]string{
	fieldExpr:  "expression",
	fieldXMin:  "x min",
	fieldXMax:  "x max",
	fieldYMin:  "y min",
	fieldYMax:  "y max",
	fieldColor: "color",
}

var errEmptyField = errors.New("empty")

type field struct {
	text   []rune
	cursor int
}

func (f *field) set(s string) {
	f.text = []rune(s)
	f.cursor = len(f.text)
}

func (f *field) String() string { return string(f.text) }

// form holds the editable text of every view field. Edits stay local until apply.
type form struct {
	fields [fieldCount]field
	focus  fieldID
}

func (fm *form) load(v plot.ViewConfig) {
	fm.fields[fieldExpr].set(v.Expression)
	fm.fields[fieldXMin].set(formatBound(v.DomainMin))
	fm.fields[fieldXMax].set(formatBound(v.DomainMax))
	fm.fields[fieldYMin].set(formatBound(v.RangeMin))
	fm.fields[fieldYMax].set(formatBound(v.RangeMax))
	fm.fields[fieldColor].set(config.Color{RGBA: v.Stroke}.String())
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (fm *form) cur() *field { return &fm.fields[fm.focus] }

func (fm *form) next() { fm.focus = (fm.focus + 1) % fieldCount }
func (fm *form) prev() { fm.focus = (fm.focus + fieldCount - 1) % fieldCount }

func (fm *form) insert(r rune) {
	f := fm.cur()
	f.text = append(f.text, 0)
	copy(f.text[f.cursor+1:], f.text[f.cursor:])
	f.text[f.cursor] = r
	f.cursor++
}

func (fm *form) backspace() {
	f := fm.cur()
	if f.cursor == 0 {
		return
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
}

func (fm *form) del() {
	f := fm.cur()
	if f.cursor >= len(f.text) {
		return
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
}

func (fm *form) left() {
	if f := fm.cur(); f.cursor > 0 {
		f.cursor--
	}
}

func (fm *form) right() {
	if f := fm.cur(); f.cursor < len(f.text) {
		f.cursor++
	}
}

func (fm *form) home() { fm.cur().cursor = 0 }
func (fm *form) end()  { fm.cur().cursor = len(fm.cur().text) }

// view parses every field into a copy of base and validates the result.
func (fm *form) view(base plot.ViewConfig) (plot.ViewConfig, error) {
	v := base
	v.Expression = strings.TrimSpace(fm.fields[fieldExpr].String())

	bounds := []struct {
		id  fieldID
		dst *float64
	}{
		{fieldXMin, &v.DomainMin},
		{fieldXMax, &v.DomainMax},
		{fieldYMin, &v.RangeMin},
		{fieldYMax, &v.RangeMax},
	}
	for _, b := range bounds {
		s := strings.TrimSpace(fm.fields[b.id].String())
		if s == "" {
			return base, fmt.Errorf("%s: %w", fieldNames[b.id], errEmptyField)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return base, fmt.Errorf("%s: %q is not a number", fieldNames[b.id], s)
		}
		*b.dst = f
	}

	c, err := config.ParseColor(fm.fields[fieldColor].String())
	if err != nil {
		return base, fmt.Errorf("%s: %w", fieldNames[fieldColor], err)
	}
	v.Stroke = c

	if err := v.Validate(); err != nil {
		return base, err
	}
	return v, nil
}
