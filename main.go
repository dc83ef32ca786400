package main

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	gin.SetMode(cfg.GinMode)

	site, err := LoadSite(portfolioYAML)
	if err != nil {
		log.Fatal("Failed to load portfolio content: ", err)
	}

	r := newRouter(cfg, site, newMetrics())

	log.Printf("Serving portfolio for %s on :%s", site.Profile.Name, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func newRouter(cfg Config, site *Site, m *metrics) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to open embedded static files: ", err)
	}
	r.StaticFS("/static", http.FS(static))

	if cfg.TrackVisitors {
		r.Use(newVisitorTracker(cfg.VisitorHashSalt, m).middleware())
	}

	store := newThemeStore(cfg)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.MetricsEnabled {
		r.GET("/metrics", m.handler())
	}

	pages := r.Group("/", advertiseColorSchemeHint())

	// Home page route
	pages.GET("/", func(c *gin.Context) {
		filter := bindFilter(c, site)
		projects := FilterProjects(site.Projects, filter.Query, filter.Category)
		m.observeSearch(filter, len(projects))

		dark := store.LoadPreference(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"rootClass":     strings.Join(ApplyPreference(nil, dark), " "),
			"dark":          dark,
			"themeOverride": themeOverride(c),
			"site":          site,
			"profile":       site.Profile,
			"links":         site.Links,
			"categories":    site.Categories,
			"filter":        filter,
			"projects":      projects,
			"year":          time.Now().Year(),
		})
	})

	// HTMX project list, re-requested on every keystroke and category click
	pages.GET("/projects", func(c *gin.Context) {
		filter := bindFilter(c, site)
		projects := FilterProjects(site.Projects, filter.Query, filter.Category)
		m.observeSearch(filter, len(projects))

		c.HTML(http.StatusOK, "projects.html", gin.H{
			"categories": site.Categories,
			"filter":     filter,
			"projects":   projects,
		})
	})

	r.GET("/api/projects", func(c *gin.Context) {
		filter := bindFilter(c, site)
		projects := FilterProjects(site.Projects, filter.Query, filter.Category)
		m.observeSearch(filter, len(projects))

		c.JSON(http.StatusOK, gin.H{
			"query":    filter.Query,
			"category": filter.Category,
			"count":    len(projects),
			"projects": projects,
		})
	})

	// Leadership and project highlights
	pages.GET("/highlights-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "highlights-content.html", gin.H{
			"entries": site.Highlights,
		})
	})

	// Education content
	pages.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education-content.html", gin.H{
			"entries": site.Education,
		})
	})

	r.POST("/theme", toggleTheme(site, store, m))

	return r
}

func bindFilter(c *gin.Context, site *Site) FilterState {
	var filter FilterState
	if err := c.ShouldBindQuery(&filter); err != nil {
		log.Printf("Ignoring malformed filter query: %v", err)
	}
	return site.normalizeFilter(filter)
}
