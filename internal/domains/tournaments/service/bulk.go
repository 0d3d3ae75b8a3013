package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/savioruz/turfics/internal/domains/tournaments/dto"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
	"golang.org/x/sync/errgroup"
)

const (
	MaxBulkRows     = 256
	bulkConcurrency = 4
)

var bulkColumns = []string{"team_name", "captain_name", "contact_number"}

type bulkRow struct {
	line int
	req  turfapi.RegisterTeamRequest
}

// parseRoster reads team rows. A header naming team_name selects columns by
// name, otherwise columns are team, captain and contact in that order.
func parseRoster(r io.Reader) (rows []bulkRow, invalid []dto.BulkRowError, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, failure.BadRequest(fmt.Errorf("invalid csv: %w", err))
	}

	index := map[string]int{"team_name": 0, "captain_name": 1, "contact_number": 2}
	start := 0

	if len(records) > 0 {
		header := map[string]int{}
		for i, col := range records[0] {
			header[strings.ToLower(strings.TrimSpace(col))] = i
		}

		if _, ok := header["team_name"]; ok {
			index = map[string]int{}
			for _, col := range bulkColumns {
				if i, ok := header[col]; ok {
					index[col] = i
				}
			}

			start = 1
		}
	}

	if len(records)-start > MaxBulkRows {
		return nil, nil, failure.BadRequestFromString(fmt.Sprintf("at most %d teams per upload", MaxBulkRows))
	}

	field := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}

		return strings.TrimSpace(rec[i])
	}

	for n, rec := range records[start:] {
		line := start + n + 1
		req := turfapi.RegisterTeamRequest{
			TeamName:      field(rec, "team_name"),
			CaptainName:   field(rec, "captain_name"),
			ContactNumber: field(rec, "contact_number"),
		}

		if req.TeamName == "" && req.CaptainName == "" && req.ContactNumber == "" {
			continue
		}

		var missing []string

		for col, v := range map[string]string{
			"team_name":      req.TeamName,
			"captain_name":   req.CaptainName,
			"contact_number": req.ContactNumber,
		} {
			if v == "" {
				missing = append(missing, col)
			}
		}

		if len(missing) > 0 {
			invalid = append(invalid, dto.BulkRowError{
				Row:      line,
				TeamName: req.TeamName,
				Error:    "missing " + strings.Join(sortColumns(missing), ", "),
			})

			continue
		}

		rows = append(rows, bulkRow{line: line, req: req})
	}

	return rows, invalid, nil
}

func sortColumns(cols []string) []string {
	out := make([]string, 0, len(cols))

	for _, c := range bulkColumns {
		for _, m := range cols {
			if m == c {
				out = append(out, c)
			}
		}
	}

	return out
}

// RegisterBulk registers every valid roster row with bounded concurrency.
// Row failures are reported per row; an expired session aborts the upload.
func (s *tournamentService) RegisterBulk(ctx context.Context, sess *session.Session, id int64, roster io.Reader) (res dto.BulkResponse, err error) {
	rows, invalid, err := parseRoster(roster)
	if err != nil {
		return res, err
	}

	if len(rows) == 0 && len(invalid) == 0 {
		return res, failure.BadRequestFromString("roster is empty")
	}

	results := make([]error, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)

	for i, row := range rows {
		g.Go(func() error {
			_, err := s.api.RegisterTeam(gctx, sess, id, row.req)
			if errors.Is(err, failure.ErrSessionExpired) {
				return err
			}

			results[i] = err

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error(identifier, fmt.Sprintf("bulk register on %d: %s", id, err.Error()))

		return res, err
	}

	res.Total = len(rows) + len(invalid)
	res.Failed = invalid

	for i, row := range rows {
		if results[i] != nil {
			res.Failed = append(res.Failed, dto.BulkRowError{
				Row:      row.line,
				TeamName: row.req.TeamName,
				Error:    results[i].Error(),
			})

			continue
		}

		res.Registered++
	}

	if res.Failed == nil {
		res.Failed = []dto.BulkRowError{}
	}

	slices.SortFunc(res.Failed, func(a, b dto.BulkRowError) int { return a.Row - b.Row })

	if res.Registered > 0 {
		s.forget(ctx, id)
	}

	return res, nil
}
