package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"farmtrack/entities"
)

// sequenceSep separates the crop sequence entries inside one cell.
const sequenceSep = "|"

// sheetName is preferred when a workbook has several sheets.
const sheetName = "crops"

func readCSV(_ context.Context, path string) ([]entities.CropRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(rows)
}

func readXLSX(_ context.Context, path string) ([]entities.CropRecord, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if strings.EqualFold(s, sheetName) {
			sheet = s
			break
		}
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return fromRows(rows)
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// columns maps a header row onto field positions, accepting a few aliases
// per field. Missing columns are -1.
type columns struct {
	id, farm, kind, typ, status, planted, harvest, qty, location,
	sequence, startYear, duration, notes, created, updated int
}

func header(head []string) (columns, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	c := columns{
		id:        findAny("Id"),
		farm:      findAny("farmId", "farm"),
		kind:      findAny("kind"),
		typ:       findAny("type", "cropType", "crop"),
		status:    findAny("status"),
		planted:   findAny("plantingDate", "planted"),
		harvest:   findAny("expectedHarvest", "harvest"),
		qty:       findAny("quantity", "qty"),
		location:  findAny("location"),
		sequence:  findAny("cropSequence", "sequence"),
		startYear: findAny("startYear"),
		duration:  findAny("duration"),
		notes:     findAny("notes", "note"),
		created:   findAny("createdAt"),
		updated:   findAny("updatedAt"),
	}
	if c.farm == -1 || (c.typ == -1 && c.kind == -1) {
		return c, fmt.Errorf("missing required columns, found headers %v; need at least farmId and type", head)
	}
	return c, nil
}

func fromRows(rows [][]string) ([]entities.CropRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	cols, err := header(rows[0])
	if err != nil {
		return nil, err
	}

	raws := make([]rawRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		// guard against short rows
		get := func(idx int) string {
			if idx < 0 || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if strings.Join(row, "") == "" {
			continue
		}
		line := n + 2

		var r rawRecord
		var perr error
		num := func(idx int, name string, parse func(string) error) {
			if perr != nil || get(idx) == "" {
				return
			}
			if err := parse(get(idx)); err != nil {
				perr = fmt.Errorf("row %d %s: %w", line, name, err)
			}
		}
		num(cols.id, "Id", func(s string) error { v, err := strconv.ParseUint(s, 10, 32); r.ID = uint(v); return err })
		num(cols.farm, "farmId", func(s string) error { v, err := strconv.ParseUint(s, 10, 32); r.FarmID = uint(v); return err })
		num(cols.qty, "quantity", func(s string) (err error) { r.Quantity, err = strconv.ParseFloat(s, 64); return })
		num(cols.startYear, "startYear", func(s string) (err error) { r.StartYear, err = strconv.Atoi(s); return })
		num(cols.duration, "duration", func(s string) (err error) { r.Duration, err = strconv.Atoi(s); return })
		if perr != nil {
			return nil, perr
		}

		r.Kind = get(cols.kind)
		r.Type = get(cols.typ)
		r.Status = get(cols.status)
		r.PlantingDate = get(cols.planted)
		r.ExpectedHarvest = get(cols.harvest)
		r.Location = get(cols.location)
		r.Notes = get(cols.notes)
		r.CreatedAt = get(cols.created)
		r.UpdatedAt = get(cols.updated)
		if seq := get(cols.sequence); seq != "" {
			r.CropSequence = strings.Split(seq, sequenceSep)
		}
		raws = append(raws, r)
	}
	return records(raws)
}
