package skills

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-jobinsights/internal/output"
	"go-jobinsights/internal/schema"
)

// Report file names per category; methodologies and soft skills stay
// console-only, matching what downstream consumers read today.
var reportFiles = map[Category]string{
	ProgrammingLanguages: "programming_languages.csv",
	Frameworks:           "frameworks.csv",
	CloudPlatforms:       "cloud_platforms.csv",
	Databases:            "databases.csv",
	ToolsTechnologies:    "tools_technologies.csv",
}

// Caps on how many entries each category CSV carries.
var reportLimits = map[Category]int{
	ProgrammingLanguages: 20,
	Frameworks:           20,
	CloudPlatforms:       15,
	Databases:            15,
	ToolsTechnologies:    20,
}

// WriteReports writes one skill,count CSV per exported category under
// dataDir, count-descending.
func WriteReports(dataDir string, counts map[Category][]Count) error {
	for _, cat := range Categories {
		name, ok := reportFiles[cat]
		if !ok {
			continue
		}
		limit := reportLimits[cat]
		entries := counts[cat]
		if len(entries) > limit {
			entries = entries[:limit]
		}

		records := make([][]string, 0, len(entries))
		for _, c := range entries {
			records = append(records, []string{c.Skill, strconv.Itoa(c.N)})
		}
		path := filepath.Join(dataDir, name)
		if err := output.WriteRecords(path, []string{"skill", "count"}, records); err != nil {
			return fmt.Errorf("write %s report: %w", cat, err)
		}
	}
	return nil
}

var categoryTitles = map[Category]string{
	ProgrammingLanguages: "Programming Languages",
	Frameworks:           "Frameworks & Libraries",
	CloudPlatforms:       "Cloud & DevOps",
	Databases:            "Databases",
	ToolsTechnologies:    "Tools & Technologies",
	Methodologies:        "Methodologies",
	SoftSkills:           "Soft Skills",
}

// PrintReport writes the human-readable analysis to w: dataset totals,
// source/company/location tallies, then the top skills per category.
func PrintReport(w io.Writer, rows []schema.Row, counts map[Category][]Count) {
	caser := cases.Title(language.English)

	fmt.Fprintln(w, "======================================================================")
	fmt.Fprintln(w, "JOB INSIGHTS ANALYSIS")
	fmt.Fprintln(w, "======================================================================")
	fmt.Fprintf(w, "\nTotal jobs: %d\n", len(rows))

	fmt.Fprintln(w, "\nJobs by source:")
	for _, c := range tally(rows, schema.Row.Source, 0) {
		fmt.Fprintf(w, "  %-15s %4d jobs\n", c.Skill, c.N)
	}

	fmt.Fprintln(w, "\nTop 10 companies:")
	for i, c := range tally(rows, schema.Row.Company, 10) {
		fmt.Fprintf(w, "  %2d. %-40s %3d jobs\n", i+1, c.Skill, c.N)
	}

	fmt.Fprintln(w, "\nTop 10 locations:")
	for i, c := range tally(rows, schema.Row.Location, 10) {
		fmt.Fprintf(w, "  %2d. %-40s %3d jobs\n", i+1, c.Skill, c.N)
	}

	for _, cat := range Categories {
		entries := counts[cat]
		limit := 15
		if len(entries) < limit {
			limit = len(entries)
		}
		fmt.Fprintf(w, "\nTop %s:\n", categoryTitles[cat])
		if limit == 0 {
			fmt.Fprintln(w, "  none detected")
			continue
		}
		for i, c := range entries[:limit] {
			fmt.Fprintf(w, "  %2d. %-20s %4d mentions\n", i+1, caser.String(c.Skill), c.N)
		}
	}
	fmt.Fprintln(w, "\n======================================================================")
}

// tally counts non-empty values of one field across the dataset, reusing the
// Count shape for its ordering.
func tally(rows []schema.Row, field func(schema.Row) string, limit int) []Count {
	byValue := make(map[string]int)
	for _, r := range rows {
		if v := field(r); v != "" {
			byValue[v]++
		}
	}
	counts := make([]Count, 0, len(byValue))
	for v, n := range byValue {
		counts = append(counts, Count{Skill: v, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Skill < counts[j].Skill
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
