package glossary

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestMakeTable(t *testing.T) {
	expected := []Term{
		{Name: "Customer", Description: "A party that buys goods", Status: "Published", Domain: "Sales"},
		{Name: "Order", Description: "A request to purchase", Status: "Draft", Domain: "Sales"},
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"Name", "Description", "Status", "Domain"},
			{"Customer", "A party that buys goods", "Published", "Sales"},
			{"Order", "A request to purchase", "", "Sales"},
		},
	}

	terms, err := MakeTable(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if !reflect.DeepEqual(terms, expected) {
		t.Errorf("Incorrect terms\n   expected: %+v\n   got:      %+v\n", expected, terms)
	}
}

func TestMakeTableSkipsRowsWithoutName(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Name", "Description"},
			{"Customer", "desc1"},
			{"", "no name - skipped"},
			{"Order", "desc2"},
		},
	}

	terms, err := MakeTable(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if len(terms) != 2 {
		t.Fatalf("Expected 2 terms, got %v", len(terms))
	}

	if terms[0].Name != "Customer" || terms[1].Name != "Order" {
		t.Errorf("Incorrect term order - expected [Customer Order], got [%v %v]", terms[0].Name, terms[1].Name)
	}
}

func TestMakeTableWithColumnAliases(t *testing.T) {
	expected := []Term{
		{Name: "Customer", Description: "A party that buys goods", LongDescription: "Anyone with a billing account", Status: "Draft"},
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"Term", "Short Description", "Long Description"},
			{"Customer", "A party that buys goods", "Anyone with a billing account"},
		},
	}

	terms, err := MakeTable(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if !reflect.DeepEqual(terms, expected) {
		t.Errorf("Incorrect terms\n   expected: %+v\n   got:      %+v\n", expected, terms)
	}
}

func TestMakeTableWithEmptySheet(t *testing.T) {
	data := sheets.ValueRange{}

	if _, err := MakeTable(&data); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestMakeTableWithMissingNameColumn(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Description", "Status"},
			{"A party that buys goods", "Draft"},
		},
	}

	if _, err := MakeTable(&data); err == nil {
		t.Fatalf("Expected error return for missing 'name' column, got %v", err)
	}
}

func TestMakeTableWithDuplicateColumns(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Name", "Description", "Short Description"},
			{"Customer", "desc", "desc again"},
		},
	}

	if _, err := MakeTable(&data); err == nil {
		t.Fatalf("Expected error return for duplicate column, got %v", err)
	}
}

func TestMakeTableWithShortRows(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Name", "Description", "Domain"},
			{"Customer"},
		},
	}

	terms, err := MakeTable(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if len(terms) != 1 || terms[0].Name != "Customer" || terms[0].Domain != "" {
		t.Errorf("Incorrect terms for short row, got %+v", terms)
	}
}

func TestReadTSV(t *testing.T) {
	expected := []Term{
		{Name: "Customer", Description: "A party that buys goods", Status: "Published", Domain: "Sales"},
		{Name: "Order", Description: "A request to purchase", Status: "Draft", Domain: "Sales"},
	}

	tsv := `Name	Description	Status	Domain
Customer	A party that buys goods	Published	Sales
Order	A request to purchase	Draft	Sales
`

	terms, err := ReadTSV(strings.NewReader(tsv))
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTSV (%v)", err)
	}

	if !reflect.DeepEqual(terms, expected) {
		t.Errorf("Incorrect terms\n   expected: %+v\n   got:      %+v\n", expected, terms)
	}
}

func TestReadTSVWithEmptyFile(t *testing.T) {
	if _, err := ReadTSV(strings.NewReader("")); err == nil {
		t.Fatalf("Expected error return for empty file, got %v", err)
	}
}

func TestReadFileWithMissingFile(t *testing.T) {
	_, err := ReadFile("/no/such/file.tsv")
	if err == nil {
		t.Fatalf("Expected error return for missing file, got %v", err)
	}

	var ferr *FileError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FileError, got %T (%v)", err, err)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected wrapped fs.ErrNotExist, got %v", err)
	}
}

func TestWriteTSV(t *testing.T) {
	expected := `Name	Description	Long Description	Status	Domain
Customer	A party that buys goods	Anyone with a billing account	Published	Sales
Order	A request to purchase		Draft	Sales
`

	terms := []Term{
		{Name: "Customer", Description: "A party that buys goods", LongDescription: "Anyone with a billing account", Status: "Published", Domain: "Sales"},
		{Name: "Order", Description: "A request to purchase", Status: "Draft", Domain: "Sales"},
	}

	var f strings.Builder

	if err := WriteTSV(&f, terms); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}
