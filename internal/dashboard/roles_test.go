package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeRole(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Data Scientist", "Data Science & ML"},
		{"Machine Learning Engineer", "Data Science & ML"},
		{"Senior Data Analyst", "Data Analytics"},
		{"Data Engineer", "Data Engineering"},
		{"Business Analyst", "Business Analysis"},
		{"Software Engineer", "Software Engineering"},
		{"Graduate Developer", "Software Engineering"},
		{"DevOps Specialist", "DevOps & Infrastructure"},
		{"QA Lead", "QA & Testing"},
		{"IT Support Officer", "IT Support"},
		{"Cybersecurity Consultant", "Cybersecurity"},
		{"Product Manager", "Product Management"},
		{"Scrum Master", "Project Management"},
		{"Chief Happiness Officer", "Other"},
		{"", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeRole(tt.title))
		})
	}
}

func TestCategorizeRoleFirstMatchWins(t *testing.T) {
	// "Data Scientist" also contains no engineer keyword, but a combined
	// title must resolve to the more specific earlier rule.
	assert.Equal(t, "Data Science & ML", CategorizeRole("Data Scientist / Software Engineer"))
	assert.Equal(t, "Data Analytics", CategorizeRole("Analytics Engineer"))
}

func TestRoleCategoriesIncludesDefault(t *testing.T) {
	cats := RoleCategories()
	assert.Equal(t, DefaultRole, cats[len(cats)-1])
	assert.Contains(t, cats, "Software Engineering")
}
