package scraper

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Character is a scraped character before it is flattened into rows.
type Character struct {
	Name string
	CharacterPage
	BaseColour string
}

// Record is one row of the character table: a character paired with one skin.
type Record struct {
	Name        string
	Rarity      int
	Element     string
	SubElement  string
	Ascension0  string
	Ascension3  string
	FactionLogo string
	BaseColour  string
	Skin        string
	SkinURL     string
}

// Columns of the character table, in file order.
var Columns = []string{
	"Name", "Rarity", "Element", "SubElement", "Ascension0", "Ascension3",
	"FactionLogo", "BaseColour", "Skin", "SkinUrl",
}

// SkinLabel names the n-th skin slot, starting at 1.
func SkinLabel(n int) string {
	return "Skin" + strconv.Itoa(n)
}

// Unpivot flattens characters into one row per skin slot. Every character
// gets the same number of slots, the largest skin count seen (at least one).
// Duplicate (Name, SkinURL) pairs keep the first slot, and empty slots other
// than Skin1 are dropped, so a character without skins keeps a single row.
func Unpivot(chars []Character) []Record {
	slots := 1
	for _, c := range chars {
		if len(c.Skins) > slots {
			slots = len(c.Skins)
		}
	}

	type key struct{ name, url string }
	seen := make(map[key]bool)
	var records []Record
	for _, c := range chars {
		for i := 0; i < slots; i++ {
			var url string
			if i < len(c.Skins) {
				url = c.Skins[i]
			}
			k := key{c.Name, url}
			if seen[k] {
				continue
			}
			seen[k] = true
			if url == "" && i > 0 {
				continue
			}
			records = append(records, Record{
				Name:        c.Name,
				Rarity:      c.Rarity,
				Element:     c.Element,
				SubElement:  c.SubElement,
				Ascension0:  c.Ascension0,
				Ascension3:  c.Ascension3,
				FactionLogo: c.FactionLogo,
				BaseColour:  c.BaseColour,
				Skin:        SkinLabel(i + 1),
				SkinURL:     url,
			})
		}
	}
	return records
}

func (r Record) row() []string {
	return []string{
		r.Name, strconv.Itoa(r.Rarity), r.Element, r.SubElement, r.Ascension0, r.Ascension3,
		r.FactionLogo, r.BaseColour, r.Skin, r.SkinURL,
	}
}

// WriteCSV writes the header and records.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table written by WriteCSV. Columns are matched by header
// name; Name and Rarity are required.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("character table is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, required := range []string{"Name", "Rarity"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("character table has no %s column", required)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		rarity, err := parseRarity(field("Rarity"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, Record{
			Name:        field("Name"),
			Rarity:      rarity,
			Element:     field("Element"),
			SubElement:  field("SubElement"),
			Ascension0:  field("Ascension0"),
			Ascension3:  field("Ascension3"),
			FactionLogo: field("FactionLogo"),
			BaseColour:  field("BaseColour"),
			Skin:        field("Skin"),
			SkinURL:     field("SkinUrl"),
		})
	}
	return records, nil
}

// parseRarity accepts "6" and the "6.0" float form.
func parseRarity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if r, err := strconv.Atoi(s); err == nil {
		return r, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid rarity %q", s)
	}
	return int(f), nil
}

// SaveCSV writes records to path, replacing any existing file.
func SaveCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// LoadCSV reads the character table at path.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening character table: %w", err)
	}
	defer f.Close()
	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
