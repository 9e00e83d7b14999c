// Package roster reads and writes the tabular roster files: the input list
// of people, the assigned roster and the per-team stats table.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/teamalloc/internal/model"
)

// Column names
const (
	ColumnID         = "Id"
	ColumnGuestID    = "GuestId"
	ColumnDivision   = "Division"
	ColumnCompagnons = "IsCompagnons"
	ColumnTeam       = "Team"
)

// CompagnonYes marks a member in the IsCompagnons column
const CompagnonYes = "OUI"

const compagnonNo = "NON"

// ErrMissingColumn is returned when a required column is absent from the header
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{ColumnID, ColumnGuestID, ColumnDivision, ColumnCompagnons}

// Input is a parsed roster file. Assignment is non-nil only when the file
// carries a Team column.
type Input struct {
	Roster     *model.Roster
	Assignment model.Assignment
}

// Read parses a roster from r. The header is required; column order is free
// and unknown columns are ignored.
func Read(r io.Reader) (*Input, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	teamCol, hasTeam := columns[ColumnTeam]

	var people []model.Person
	var labels []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		field := func(name string) string {
			return strings.TrimSpace(record[columns[name]])
		}
		people = append(people, model.Person{
			ID:          model.PersonID(field(ColumnID)),
			GuestID:     model.PersonID(field(ColumnGuestID)),
			Division:    field(ColumnDivision),
			IsCompagnon: field(ColumnCompagnons) == CompagnonYes,
		})
		if hasTeam {
			labels = append(labels, strings.TrimSpace(record[teamCol]))
		}
	}

	roster, err := model.NewRoster(people)
	if err != nil {
		return nil, err
	}

	input := &Input{Roster: roster}
	if hasTeam {
		input.Assignment = make(model.Assignment, len(labels))
		for i, label := range labels {
			if label == "" {
				continue
			}
			id, err := model.ParseTeamLabel(label)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
			input.Assignment[people[i].ID] = id
		}
	}

	return input, nil
}

// WriteAssignment writes the roster with each person's team label, in roster
// order. Unassigned people get an empty Team cell.
func WriteAssignment(w io.Writer, roster *model.Roster, assignment model.Assignment) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(append(append([]string{}, requiredColumns...), ColumnTeam)); err != nil {
		return err
	}

	for _, p := range roster.People() {
		compagnon := compagnonNo
		if p.IsCompagnon {
			compagnon = CompagnonYes
		}
		team := ""
		if id, ok := assignment[p.ID]; ok {
			team = id.Label()
		}
		record := []string{string(p.ID), string(p.GuestID), p.Division, compagnon, team}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteStats writes one row per team
func WriteStats(w io.Writer, stats []model.TeamStats) error {
	writer := csv.NewWriter(w)
	header := []string{"Team", "Members", "Compagnons", "DivisionCount", "Divisions", "Pairs", "PairDeviation"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range stats {
		record := []string{
			row.Team.Label(),
			strconv.Itoa(row.Members),
			strconv.Itoa(row.Compagnons),
			strconv.Itoa(row.DivisionCount),
			strings.Join(row.Divisions, ", "),
			strconv.Itoa(row.Pairs),
			strconv.Itoa(row.PairDeviation),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
