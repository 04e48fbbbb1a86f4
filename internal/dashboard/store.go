// Package dashboard computes the aggregate views the dashboard UI consumes
// and serves them as a JSON API. The dataset is loaded once at startup and
// treated as read-only; a rebuilt CSV means a server restart.
package dashboard

import (
	"sort"
	"strings"

	"go-jobinsights/internal/schema"
	"go-jobinsights/internal/skills"
)

// Job is one listing as served to the dashboard.
type Job struct {
	Source       string `json:"source"`
	Title        string `json:"title"`
	Company      string `json:"company,omitempty"`
	Location     string `json:"location,omitempty"`
	RoleCategory string `json:"role_category"`
	URL          string `json:"url,omitempty"`
}

// Summary carries the KPI row.
type Summary struct {
	Jobs      int `json:"jobs"`
	Companies int `json:"companies"`
	Locations int `json:"locations"`
	RoleTypes int `json:"role_types"`
}

// NameCount is one bar of a distribution chart.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Store holds the dataset with per-row role categories precomputed and the
// skills extractor shared across requests.
type Store struct {
	rows      []schema.Row
	roles     []string
	extractor *skills.Extractor
}

// NewStore indexes the dataset.
func NewStore(rows []schema.Row) *Store {
	roles := make([]string, len(rows))
	for i, r := range rows {
		roles[i] = CategorizeRole(r.Title())
	}
	return &Store{rows: rows, roles: roles, extractor: skills.NewExtractor()}
}

// Summary computes the KPI totals.
func (s *Store) Summary() Summary {
	companies := make(map[string]bool)
	locations := make(map[string]bool)
	roleTypes := make(map[string]bool)
	for i, r := range s.rows {
		if c := r.Company(); c != "" {
			companies[c] = true
		}
		if l := r.Location(); l != "" {
			locations[l] = true
		}
		roleTypes[s.roles[i]] = true
	}
	return Summary{
		Jobs:      len(s.rows),
		Companies: len(companies),
		Locations: len(locations),
		RoleTypes: len(roleTypes),
	}
}

// Sources returns jobs-per-source, count descending.
func (s *Store) Sources() []NameCount {
	return s.distribution(func(i int) string { return s.rows[i].Source() }, 0)
}

// Roles returns the role-category distribution, count descending.
func (s *Store) Roles() []NameCount {
	return s.distribution(func(i int) string { return s.roles[i] }, 0)
}

// TopCompanies returns the most frequent companies, capped at limit.
func (s *Store) TopCompanies(limit int) []NameCount {
	return s.distribution(func(i int) string { return s.rows[i].Company() }, limit)
}

// TopLocations returns the most frequent locations, capped at limit.
func (s *Store) TopLocations(limit int) []NameCount {
	return s.distribution(func(i int) string { return s.rows[i].Location() }, limit)
}

// Skills tallies one dictionary category over the dataset, dropping entries
// below min mentions.
func (s *Store) Skills(category skills.Category, min int) []NameCount {
	counts := s.extractor.CountByCategory(s.rows)[category]
	out := make([]NameCount, 0, len(counts))
	for _, c := range counts {
		if c.N >= min {
			out = append(out, NameCount{Name: c.Skill, Count: c.N})
		}
	}
	return out
}

// Jobs returns listings filtered by free-text query (title, company,
// location), source, and role category, in dataset order, capped at limit.
func (s *Store) Jobs(query, source, role string, limit int) []Job {
	query = strings.ToLower(query)

	var out []Job
	for i, r := range s.rows {
		if source != "" && r.Source() != source {
			continue
		}
		if role != "" && s.roles[i] != role {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		out = append(out, Job{
			Source:       r.Source(),
			Title:        r.Title(),
			Company:      r.Company(),
			Location:     r.Location(),
			RoleCategory: s.roles[i],
			URL:          r.URL(),
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func matchesQuery(r schema.Row, query string) bool {
	return strings.Contains(strings.ToLower(r.Title()), query) ||
		strings.Contains(strings.ToLower(r.Company()), query) ||
		strings.Contains(strings.ToLower(r.Location()), query)
}

func (s *Store) distribution(value func(int) string, limit int) []NameCount {
	tally := make(map[string]int)
	for i := range s.rows {
		if v := value(i); v != "" {
			tally[v]++
		}
	}
	out := make([]NameCount, 0, len(tally))
	for name, n := range tally {
		out = append(out, NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
