package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-jobinsights/internal/skills"
)

const (
	defaultTopLimit  = 20
	defaultJobsLimit = 50
	maxLimit         = 500
)

// NewRouter wires the dashboard API. csvPath backs the export endpoint with
// the very artifact the pipeline wrote.
func NewRouter(store *Store, csvPath string, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/summary", func(c *gin.Context) {
			c.JSON(http.StatusOK, store.Summary())
		})
		api.GET("/sources", func(c *gin.Context) {
			c.JSON(http.StatusOK, store.Sources())
		})
		api.GET("/roles", func(c *gin.Context) {
			c.JSON(http.StatusOK, store.Roles())
		})
		api.GET("/companies", func(c *gin.Context) {
			c.JSON(http.StatusOK, store.TopCompanies(limitParam(c, defaultTopLimit)))
		})
		api.GET("/locations", func(c *gin.Context) {
			c.JSON(http.StatusOK, store.TopLocations(limitParam(c, defaultTopLimit)))
		})
		api.GET("/skills", func(c *gin.Context) {
			category := skills.Category(c.DefaultQuery("category", string(skills.ProgrammingLanguages)))
			if _, ok := skills.Dictionaries[category]; !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown skill category: " + string(category)})
				return
			}
			min, err := strconv.Atoi(c.DefaultQuery("min", "1"))
			if err != nil || min < 1 {
				min = 1
			}
			c.JSON(http.StatusOK, store.Skills(category, min))
		})
		api.GET("/jobs", func(c *gin.Context) {
			jobs := store.Jobs(
				c.Query("q"),
				c.Query("source"),
				c.Query("role"),
				limitParam(c, defaultJobsLimit),
			)
			c.JSON(http.StatusOK, gin.H{"count": len(jobs), "jobs": jobs})
		})
		api.GET("/export", func(c *gin.Context) {
			log.Infow("dataset export requested", "client", c.ClientIP())
			c.FileAttachment(csvPath, "jobs_merged.csv")
		})
	}

	return r
}

func limitParam(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit < 1 {
		return def
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
