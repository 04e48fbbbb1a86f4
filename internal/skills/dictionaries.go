// Package skills extracts keyword-based skills from job text. The
// dictionaries are curated static word lists; matching is word-boundary
// aware over lowercased title+description, with an Aho-Corasick automaton as
// a cheap candidate prefilter before per-term confirmation.
package skills

// Category names skill dictionaries and their report files.
type Category string

const (
	ProgrammingLanguages Category = "programming_languages"
	Frameworks           Category = "frameworks"
	CloudPlatforms       Category = "cloud_platforms"
	Databases            Category = "databases"
	ToolsTechnologies    Category = "tools_technologies"
	Methodologies        Category = "methodologies"
	SoftSkills           Category = "soft_skills"
)

// Categories lists every dictionary in report order.
var Categories = []Category{
	ProgrammingLanguages,
	Frameworks,
	CloudPlatforms,
	Databases,
	ToolsTechnologies,
	Methodologies,
	SoftSkills,
}

// Dictionaries maps each category to its curated terms. Terms are lowercase;
// a term may appear in more than one category (sql, agile) and then counts
// toward each.
var Dictionaries = map[Category][]string{
	ProgrammingLanguages: {
		"python", "java", "javascript", "typescript", "c++", "c#", "csharp", "c",
		"ruby", "php", "swift", "kotlin", "go", "golang", "rust", "scala",
		"r", "matlab", "perl", "shell", "bash", "powershell", "sql", "html", "css",
	},
	Frameworks: {
		"react", "reactjs", "react.js", "angular", "vue", "vuejs", "vue.js",
		"node", "nodejs", "node.js", "express", "django", "flask", "fastapi",
		"spring", "spring boot", ".net", "dotnet", "asp.net",
		"jquery", "bootstrap", "tailwind", "next.js", "nextjs",
		"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
		"redux", "graphql", "rest", "restful",
	},
	CloudPlatforms: {
		"aws", "azure", "gcp", "google cloud", "cloud", "docker", "kubernetes",
		"jenkins", "terraform", "ansible", "gitlab", "github", "bitbucket",
		"ci/cd", "devops",
	},
	Databases: {
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "cassandra",
		"oracle", "sql server", "dynamodb", "elasticsearch", "sqlite",
		"nosql", "database", "db2", "mariadb",
	},
	ToolsTechnologies: {
		"git", "jira", "confluence", "slack", "agile", "scrum", "kanban",
		"linux", "unix", "windows", "macos", "api", "microservices",
		"machine learning", "ml", "ai", "artificial intelligence", "data science",
		"big data", "etl", "data warehouse", "business intelligence", "bi",
		"power bi", "tableau", "excel", "spark", "hadoop", "kafka",
	},
	Methodologies: {
		"agile", "scrum", "kanban", "waterfall", "lean", "six sigma",
		"test driven development", "tdd", "behavior driven development", "bdd",
	},
	SoftSkills: {
		"communication", "teamwork", "problem solving", "analytical", "leadership",
		"collaboration", "critical thinking", "time management", "adaptability",
		"creativity", "attention to detail", "organizational", "presentation",
	},
}

// AllTerms returns the union of every dictionary, deduplicated, in stable
// order.
func AllTerms() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, cat := range Categories {
		for _, term := range Dictionaries[cat] {
			if !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}
	return terms
}
