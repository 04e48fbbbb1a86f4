package dashboard

import "strings"

// DefaultRole is assigned when no rule matches a title.
const DefaultRole = "Other"

type roleRule struct {
	category string
	keywords []string
}

// roleRules run in order of specificity; the first rule whose keyword
// appears as a substring of the lowercased title wins. "data scientist" must
// therefore outrank the generic engineer rule.
var roleRules = []roleRule{
	{"Data Science & ML", []string{"data scientist", "machine learning", "ml engineer", "ai "}},
	{"Data Analytics", []string{"data analyst", "business intelligence", "analytics"}},
	{"Data Engineering", []string{"data engineer", "data architect", "etl"}},
	{"Business Analysis", []string{"business analyst", "systems analyst", "functional analyst"}},
	{"Software Engineering", []string{"software engineer", "software developer", "developer", "engineer", "programmer"}},
	{"DevOps & Infrastructure", []string{"devops", "sre", "infrastructure", "cloud"}},
	{"QA & Testing", []string{"qa", "test", "quality assurance"}},
	{"IT Support", []string{"support", "help desk", "service desk", "technical support"}},
	{"Cybersecurity", []string{"security", "cybersecurity", "infosec"}},
	{"Product Management", []string{"product manager", "product owner"}},
	{"Project Management", []string{"project manager", "program manager", "scrum master"}},
}

// CategorizeRole derives the role-category label for a job title.
func CategorizeRole(title string) string {
	if title == "" {
		return DefaultRole
	}
	lower := strings.ToLower(title)
	for _, rule := range roleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return DefaultRole
}

// RoleCategories lists every label a title can map to, rule order first,
// DefaultRole last.
func RoleCategories() []string {
	out := make([]string, 0, len(roleRules)+1)
	for _, rule := range roleRules {
		out = append(out, rule.category)
	}
	return append(out, DefaultRole)
}
