// Package report renders a persisted evaluation as a PDF document. The
// generator is a pure function of the evaluation record.
package report

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/uxmetrics/eval-server/internal/kano"
	"github.com/uxmetrics/eval-server/internal/service"
)

const (
	pageMargin = 15.0
	lineHeight = 6.0
)

var filenameSanitizer = regexp.MustCompile(`[^\w\-.]`)

// Filename builds the download name Project_Version_ddmmyyyy.pdf with
// sanitized segments.
func Filename(evaluation *service.Evaluation) string {
	name := strings.ReplaceAll(evaluation.ProjectInfo.Name, " ", "_")
	if name == "" {
		name = "UnknownProject"
	}
	name = filenameSanitizer.ReplaceAllString(name, "")
	if len(name) > 30 {
		name = name[:30]
	}

	version := strings.ReplaceAll(strings.TrimSpace(evaluation.ProjectInfo.Version), " ", "_")
	if version == "" {
		version = "1.0"
	}
	version = filenameSanitizer.ReplaceAllString(version, "")
	if len(version) > 10 {
		version = version[:10]
	}

	return fmt.Sprintf("%s_%s_%s.pdf", name, version, evaluation.CreatedAt.Format("02012006"))
}

// Generate writes the PDF report for one evaluation.
func Generate(evaluation *service.Evaluation, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	writeTitle(pdf, evaluation)
	writeOverallSection(pdf, evaluation)
	writeSUSSection(pdf, evaluation)
	writeKanoSection(pdf, evaluation)
	writeRecommendationsSection(pdf, evaluation)

	return pdf.Output(w)
}

func writeTitle(pdf *fpdf.Fpdf, evaluation *service.Evaluation) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Usability Evaluation Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	info := evaluation.ProjectInfo
	rows := [][2]string{
		{"Project", info.Name},
		{"Version", info.Version},
		{"Team", info.Team},
		{"Evaluation ID", evaluation.ID},
		{"Date", evaluation.CreatedAt.Format("2006-01-02 15:04 MST")},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, lineHeight, row[1], "", 1, "L", false, 0, "")
	}
	if info.Description != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, lineHeight, info.Description, "", "L", false)
	}
	pdf.Ln(4)
}

func sectionHeading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeOverallSection(pdf *fpdf.Fpdf, evaluation *service.Evaluation) {
	sectionHeading(pdf, "Overall Assessment")

	overall := evaluation.OverallAssessment
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, lineHeight+1, fmt.Sprintf("Overall Score: %.1f / 100", overall.OverallScore), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, lineHeight, "Maturity Level: "+overall.MaturityLevel, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeFlagList(pdf, "Key Strengths", overall.KeyStrengths)
	writeFlagList(pdf, "Critical Issues", overall.CriticalIssues)
	writeFlagList(pdf, "Priority Actions", overall.PriorityActions)
	pdf.Ln(3)
}

func writeFlagList(pdf *fpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, lineHeight, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.CellFormat(0, lineHeight, "- "+item, "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)
}

func writeSUSSection(pdf *fpdf.Fpdf, evaluation *service.Evaluation) {
	sectionHeading(pdf, "System Usability Scale")

	s := evaluation.SUSEvaluation
	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Score", fmt.Sprintf("%.1f / 100", s.Score)},
		{"Grade", string(s.Grade)},
		{"Percentile", fmt.Sprintf("%.1f", s.Percentile)},
		{"Adjective Rating", s.AdjectiveRating},
		{"Acceptability", s.Acceptability},
		{"Benchmark", s.DetailedAnalysis.BenchmarkComparison.BenchmarkCategory},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, lineHeight, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)

	writeFlagList(pdf, "Strengths", s.DetailedAnalysis.Strengths)
	writeFlagList(pdf, "Weaknesses", s.DetailedAnalysis.Weaknesses)
	pdf.Ln(3)
}

func writeKanoSection(pdf *fpdf.Fpdf, evaluation *service.Evaluation) {
	sectionHeading(pdf, "Kano Model Analysis")

	summary := evaluation.KanoEvaluation.Summary

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, lineHeight+1, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, lineHeight+1, "Count", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, lineHeight+1, "Share", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, category := range kano.Categories {
		pdf.CellFormat(60, lineHeight, category.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, lineHeight, fmt.Sprintf("%d", summary.CategoryCounts[category]), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, lineHeight, fmt.Sprintf("%.1f%%", summary.CategoryPercentages[category]), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.CellFormat(0, lineHeight, fmt.Sprintf("Average satisfaction impact: %.2f", summary.AverageSatisfactionImpact), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, fmt.Sprintf("Average dissatisfaction impact: %.2f", summary.AverageDissatisfactionImpact), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	writeFlagList(pdf, "Top Must-be Features", featureTitles(summary.PriorityFeatures.MustBe))
	writeFlagList(pdf, "Top One-dimensional Features", featureTitles(summary.PriorityFeatures.OneDimensional))
	writeFlagList(pdf, "Top Attractive Features", featureTitles(summary.PriorityFeatures.Attractive))
	pdf.Ln(3)
}

func featureTitles(ids []string) []string {
	titles := make([]string, len(ids))
	for i, id := range ids {
		titles[i] = questionTitle(id)
	}
	return titles
}

func questionTitle(id string) string {
	for _, q := range kano.DefaultQuestions {
		if q.ID == id {
			return q.Title
		}
	}
	return id
}

func writeRecommendationsSection(pdf *fpdf.Fpdf, evaluation *service.Evaluation) {
	recs := evaluation.KanoEvaluation.Recommendations
	suggestions := evaluation.SUSEvaluation.DetailedAnalysis.ImprovementSuggestions
	if len(recs) == 0 && len(suggestions) == 0 {
		return
	}

	sectionHeading(pdf, "Recommendations")

	for _, rec := range recs {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("[%s] %s - %s", rec.Priority, rec.Category, rec.Feature), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHeight, rec.Description, "", "L", false)
		pdf.MultiCell(0, lineHeight, "Action: "+rec.Action, "", "L", false)
		pdf.Ln(1)
	}

	if len(suggestions) > 0 {
		// High before Medium; equal priorities keep the q1..q10 order.
		ordered := make([]int, len(suggestions))
		for i := range suggestions {
			ordered[i] = i
		}
		sort.SliceStable(ordered, func(i, j int) bool {
			return suggestions[ordered[i]].Priority == "High" && suggestions[ordered[j]].Priority != "High"
		})

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, lineHeight, "Usability Improvements", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, idx := range ordered {
			s := suggestions[idx]
			pdf.MultiCell(0, lineHeight, fmt.Sprintf("[%s] %s: %s", s.Priority, s.Area, s.Suggestion), "", "L", false)
		}
	}
}
