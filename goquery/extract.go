// Package goquery provides goquery-based parsers for the legacy USA Cycling
// results site: the results page parser, the event listing parser, and the
// permit page parsers.
package goquery

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/usacr"
)

// fieldError is a field-level extraction failure. It travels by value up to
// the row parser and never escapes it.
type fieldError struct {
	field  string
	reason usacr.FailureReason
}

// cells holds the text of one row fragment's cells, in document order.
type cells []string

// rowCells collects the trimmed cell texts of a row fragment.
func rowCells(row *goquery.Selection) cells {
	var out cells
	row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
		out = append(out, normalizeCell(cell.Text()))
	})
	return out
}

// normalizeCell trims whitespace and replaces the non-breaking and thin
// spaces the legacy site pads cells with.
func normalizeCell(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u2009", " ")
	return strings.TrimSpace(s)
}

// extractText pulls a text field from the row. A missing or empty required
// cell is a fieldError; a missing optional cell is an absent value.
func (c cells) extractText(idx int, field string, required bool) (string, *fieldError) {
	if idx < 0 || idx >= len(c) || c[idx] == "" {
		if required {
			return "", &fieldError{field: field, reason: usacr.FieldMissing}
		}
		return "", nil
	}
	return c[idx], nil
}

// extractInt pulls an optional integer field from the row. Malformed values
// report FieldMalformed; absent values report present=false with no error.
func (c cells) extractInt(idx int, field string) (value int, present bool, ferr *fieldError) {
	raw, err := c.extractText(idx, field, false)
	if err != nil || raw == "" {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil || n < 0 {
		return 0, false, &fieldError{field: field, reason: usacr.FieldMalformed}
	}
	return n, true, nil
}

// extractPlacing pulls the required placing field from the row.
func (c cells) extractPlacing(idx int, field string) (usacr.Placing, *fieldError) {
	raw, err := c.extractText(idx, field, true)
	if err != nil {
		return usacr.Placing{}, err
	}
	p, parseErr := usacr.ParsePlacing(raw)
	if parseErr != nil {
		return usacr.Placing{}, &fieldError{field: field, reason: usacr.FieldMalformed}
	}
	return p, nil
}

// extractDuration pulls an optional duration field from the row.
func (c cells) extractDuration(idx int, field string) (value time.Duration, present bool, ferr *fieldError) {
	raw, err := c.extractText(idx, field, false)
	if err != nil || raw == "" {
		return 0, false, err
	}
	d, parseErr := parseDuration(raw)
	if parseErr != nil {
		return 0, false, &fieldError{field: field, reason: usacr.FieldMalformed}
	}
	return d, true, nil
}

// parseDuration converts a results-page time string into a duration.
// Accepted forms: "h:mm:ss", "m:ss", optionally with a fractional seconds
// part ("52:10.5"). A comma decimal separator is normalized to a period.
func parseDuration(s string) (time.Duration, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	frac := time.Duration(0)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		f, err := strconv.ParseFloat(s[i:], 64)
		if err != nil {
			return 0, usacr.Errorf(usacr.EINVALID, "invalid time %q", s)
		}
		frac = time.Duration(f * float64(time.Second))
		s = s[:i]
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, usacr.Errorf(usacr.EINVALID, "invalid time %q", s)
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, usacr.Errorf(usacr.EINVALID, "invalid time %q", s)
		}
		total = total*60 + n
	}

	return time.Duration(total)*time.Second + frac, nil
}
