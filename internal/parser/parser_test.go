package parser

import (
	"strings"
	"testing"
)

func TestParseTeamSheetWithHeader(t *testing.T) {
	input := strings.Join([]string{
		"PLAYER,KICK_EF,KICK_IE,KICK_TO",
		"H7 J. Smith,3,1,0",
		"H23,5,2,1",
		"RUSHED,2",
	}, "\n")

	sheet, err := ParseTeamSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}

	if sheet.Meta.Rushed != 2 {
		t.Errorf("expected rushed 2, got %v", sheet.Meta.Rushed)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("expected 2 player rows, got %d", len(sheet.Rows))
	}
	row, ok := sheet.Rows["7"]
	if !ok {
		t.Fatal("expected row for jersey 7")
	}
	if row["KICK_EF"] != 3 || row["KICK_IE"] != 1 || row["KICK_TO"] != 0 {
		t.Errorf("unexpected jersey-7 row: %v", row)
	}
}

func TestParseTeamSheetHeaderNormalization(t *testing.T) {
	input := "PLAYER,kick ef,HB-TO\nA3,4,2\n"
	sheet, err := ParseTeamSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}
	row := sheet.Rows["3"]
	if row["kick_ef"] != 4 {
		t.Errorf("expected 'kick ef' to normalize to kick_ef, got %v", row)
	}
	if row["HB_TO"] != 2 {
		t.Errorf("expected 'HB-TO' to normalize to HB_TO, got %v", row)
	}
}

func TestParseTeamSheetNoHeader(t *testing.T) {
	// First row already classifies as a player row, so fields get
	// positional names.
	input := "H1,10,20\nH2,1,2\n"
	sheet, err := ParseTeamSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(sheet.Rows))
	}
	if sheet.Rows["1"]["0"] != 10 || sheet.Rows["1"]["1"] != 20 {
		t.Errorf("unexpected positional row: %v", sheet.Rows["1"])
	}
}

func TestParseTeamSheetJerseyKeyKeepsLeadingZero(t *testing.T) {
	input := "PLAYER,KICK_EF\nH07,3\n"
	sheet, err := ParseTeamSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}
	if _, ok := sheet.Rows["07"]; !ok {
		t.Errorf("expected jersey key %q as written, got %v", "07", sheet.Rows)
	}
}

func TestParseTeamSheetUnparsableValuesCoerceToZero(t *testing.T) {
	input := "PLAYER,KICK_EF,KICK_IE\nA9,n/a,3\n"
	sheet, err := ParseTeamSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}
	row := sheet.Rows["9"]
	if row["KICK_EF"] != 0 {
		t.Errorf("expected unparsable value to coerce to 0, got %v", row["KICK_EF"])
	}
	if row["KICK_IE"] != 3 {
		t.Errorf("expected 3, got %v", row["KICK_IE"])
	}
}

func TestParseTeamSheetMetaRowVariants(t *testing.T) {
	cases := []string{"RUSHED,4", "Rushed,4", "R. BEHINDS RUSHED,4", " rushed ,4"}
	for _, c := range cases {
		sheet, err := ParseTeamSheet(strings.NewReader("PLAYER,KICK_EF\n" + c + "\n"))
		if err != nil {
			t.Fatalf("ParseTeamSheet(%q): %v", c, err)
		}
		if sheet.Meta.Rushed != 4 {
			t.Errorf("label %q: expected rushed 4, got %v", c, sheet.Meta.Rushed)
		}
	}
}

func TestParseTeamSheetIgnoresOtherRows(t *testing.T) {
	input := strings.Join([]string{
		"PLAYER,KICK_EF",
		"TOTALS,99",
		"H123,1", // 3-digit jersey is not a player label
		"H5,7",
	}, "\n")
	sheet, err := ParseTeamSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}
	if len(sheet.Rows) != 1 {
		t.Fatalf("expected only jersey 5 row, got %v", sheet.Rows)
	}
}

func TestParseTeamSheetTrailingFieldsDropped(t *testing.T) {
	input := "PLAYER,KICK_EF\nH4,2,9,9\n"
	sheet, err := ParseTeamSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}
	row := sheet.Rows["4"]
	if len(row) != 1 || row["KICK_EF"] != 2 {
		t.Errorf("expected trailing unnamed fields dropped, got %v", row)
	}
}

func TestParseTeamSheetEmptyInput(t *testing.T) {
	sheet, err := ParseTeamSheet(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseTeamSheet: %v", err)
	}
	if len(sheet.Rows) != 0 || sheet.Meta.Rushed != 0 {
		t.Errorf("expected empty sheet, got %+v", sheet)
	}
}
