// Package parser converts a vendor team sheet export (delimited text) into a
// normalized TeamSheet. The row conventions are a compatibility contract with
// existing exports and must not drift: a player row's label is a side letter
// (H or A) plus a 1-2 digit jersey number with optional trailing text; a row
// whose label contains the token RUSHED carries the rushed-behind count; all
// other rows are ignored.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/isports/aflstats/internal/model"
)

var (
	playerRowRe = regexp.MustCompile(`^[HA]([0-9]{1,2})([^0-9].*)?$`)
	fieldNameRe = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// ParseTeamSheet reads one side's export. The first row is treated as a
// header naming the fields unless it already classifies as a player or meta
// row, in which case the file has no header and fields get positional names
// ("0", "1", ...). Unparsable numeric values coerce to 0, never an error.
func ParseTeamSheet(r io.Reader) (*model.TeamSheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	sheet := &model.TeamSheet{Rows: make(map[string]model.SheetRow)}

	var headers []string
	hasHeader := false
	first := true

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read team sheet: %w", err)
		}
		if len(rec) == 0 {
			continue
		}
		label := strings.TrimSpace(rec[0])

		if first {
			first = false
			if !isPlayerRow(label) && !isMetaRow(label) {
				hasHeader = true
				headers = make([]string, 0, len(rec)-1)
				for _, h := range rec[1:] {
					headers = append(headers, normalizeFieldName(h))
				}
				continue
			}
		}

		switch {
		case isMetaRow(label):
			if len(rec) > 1 {
				sheet.Meta.Rushed = parseNumber(rec[1])
			}
		case isPlayerRow(label):
			jersey := playerRowRe.FindStringSubmatch(label)[1]
			row := make(model.SheetRow, len(rec)-1)
			for i, raw := range rec[1:] {
				name := strconv.Itoa(i)
				if hasHeader {
					if i >= len(headers) {
						break // trailing fields with no header name are dropped
					}
					name = headers[i]
				}
				row[name] = parseNumber(raw)
			}
			sheet.Rows[jersey] = row
		}
	}

	return sheet, nil
}

func isPlayerRow(label string) bool {
	return playerRowRe.MatchString(label)
}

// isMetaRow matches labels carrying the RUSHED token, case- and
// spacing-insensitive ("Rushed", "R. BEHINDS RUSHED", " rushed ").
func isMetaRow(label string) bool {
	collapsed := strings.ToUpper(strings.Join(strings.Fields(label), ""))
	return strings.Contains(collapsed, "RUSHED")
}

// normalizeFieldName maps every non-alphanumeric byte to '_', so vendor
// headers like "KICK EF" and "KICK-EF" agree with the derivation field set.
func normalizeFieldName(h string) string {
	return fieldNameRe.ReplaceAllString(strings.TrimSpace(h), "_")
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
