// Package export writes call records and their insights to an xlsx workbook.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/logger"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

const (
	callsSheet    = "Calls"
	insightsSheet = "Insights"

	// transcriptExcerptLen bounds the transcript column; full transcripts
	// can run to thousands of characters.
	transcriptExcerptLen = 200
)

var callHeaders = []string{"Call ID", "Phone Number", "Status", "Duration", "Created At", "Transcript"}

var insightHeaders = []string{
	"Call ID", "Sentiment", "Churn Score", "Revenue Interest", "Gym Rating",
	"Confidence", "Anomaly Score", "Topics", "Pain Points", "Opportunities",
}

// Workbook builds an in-memory workbook with one row per call and one row
// per analyzed call. insights maps call id to its analysis; calls without
// an entry simply have no insights row.
func Workbook(calls []types.Call, insights map[string]*types.Insights) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", callsSheet); err != nil {
		return nil, fmt.Errorf("failed to name calls sheet: %w", err)
	}
	if _, err := f.NewSheet(insightsSheet); err != nil {
		return nil, fmt.Errorf("failed to create insights sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, callsSheet, 1, toAny(callHeaders)); err != nil {
		return nil, err
	}
	if err := writeRow(f, insightsSheet, 1, toAny(insightHeaders)); err != nil {
		return nil, err
	}
	if err := styleHeader(f, callsSheet, len(callHeaders), headerStyle); err != nil {
		return nil, err
	}
	if err := styleHeader(f, insightsSheet, len(insightHeaders), headerStyle); err != nil {
		return nil, err
	}

	insightRow := 2
	for i, call := range calls {
		row := []any{
			call.CallID,
			call.PhoneNumber,
			string(call.Status),
			call.FormatDuration(),
			call.CreatedAt.Display(),
			excerpt(call.Transcript(), transcriptExcerptLen),
		}
		if err := writeRow(f, callsSheet, i+2, row); err != nil {
			return nil, err
		}

		ins := insights[call.CallID]
		if ins == nil {
			ins = call.Insights
		}
		if ins == nil {
			continue
		}

		if err := writeRow(f, insightsSheet, insightRow, []any{
			call.CallID,
			types.FormatSentiment(ins.Sentiment),
			types.FormatScore(ins.ChurnScore),
			types.FormatScore(ins.RevenueInterestScore),
			types.FormatRating(ins.GymRating),
			types.FormatScore(ins.Confidence),
			formatAnomaly(ins.AnomalyScore),
			strings.Join(ins.Topics, ", "),
			strings.Join(ins.PainPoints, ", "),
			strings.Join(ins.Opportunities, ", "),
		}); err != nil {
			return nil, err
		}
		insightRow++
	}

	_ = f.SetColWidth(callsSheet, "A", "A", 24)
	_ = f.SetColWidth(callsSheet, "B", "E", 18)
	_ = f.SetColWidth(callsSheet, "F", "F", 60)
	_ = f.SetColWidth(insightsSheet, "A", "A", 24)
	_ = f.SetColWidth(insightsSheet, "B", "G", 16)
	_ = f.SetColWidth(insightsSheet, "H", "J", 40)

	return f, nil
}

// Write saves the workbook to path.
func Write(path string, calls []types.Call, insights map[string]*types.Insights) error {
	f, err := Workbook(calls, insights)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Error("failed to close workbook", "error", cerr)
		}
	}()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("exported calls workbook",
		"path", path,
		"calls", len(calls))
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("bad row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, cols, style int) error {
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func excerpt(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// formatAnomaly renders the unbounded anomaly score; only presence is
// checked since the backend does not constrain its range.
func formatAnomaly(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *p)
}
