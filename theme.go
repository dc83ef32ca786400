package main

import (
	"log"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	darkClass = "dark"

	// Client hint carrying the OS-level color scheme.
	prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

	// Query parameter the toggle redirect uses so the choice shows even when
	// the client refuses the cookie.
	themeOverrideParam = "theme"
)

// themeStore persists the dark-mode flag in a single cookie.
type themeStore struct {
	cookieName string
	maxAge     int
	secure     bool
}

func newThemeStore(cfg Config) themeStore {
	return themeStore{
		cookieName: cfg.ThemeCookie,
		maxAge:     cfg.ThemeCookieMaxAge,
		secure:     cfg.SecureCookies,
	}
}

// LoadPreference resolves the dark-mode flag for this request: the in-session
// override, then the stored cookie, then the client's color-scheme hint.
// Anything malformed counts as not set.
func (s themeStore) LoadPreference(c *gin.Context) bool {
	if dark, ok := parseThemeName(c.Query(themeOverrideParam)); ok {
		return dark
	}
	if raw, err := c.Cookie(s.cookieName); err == nil {
		if dark, err := strconv.ParseBool(raw); err == nil {
			return dark
		}
	}
	return systemPrefersDark(c.GetHeader(prefersColorSchemeHeader))
}

// SavePreference overwrites the stored flag.
func (s themeStore) SavePreference(c *gin.Context, dark bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, strconv.FormatBool(dark), s.maxAge, "/", "", s.secure, true)
}

// ApplyPreference adds or removes the dark marker on the document root's
// class list. Applying the same value twice is a no-op.
func ApplyPreference(rootClasses []string, dark bool) []string {
	out := slices.DeleteFunc(slices.Clone(rootClasses), func(c string) bool { return c == darkClass })
	if dark {
		out = append(out, darkClass)
	}
	return out
}

// themeOverride returns the normalized in-session theme, or "" when none was requested.
func themeOverride(c *gin.Context) string {
	dark, ok := parseThemeName(c.Query(themeOverrideParam))
	if !ok {
		return ""
	}
	return themeName(dark)
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func parseThemeName(v string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// systemPrefersDark reads the Sec-CH-Prefers-Color-Scheme value, which is a
// quoted structured-header string such as "dark". Missing means light.
func systemPrefersDark(hint string) bool {
	dark, ok := parseThemeName(strings.Trim(hint, `"`))
	return ok && dark
}

// advertiseColorSchemeHint asks supporting clients to send the color-scheme hint.
func advertiseColorSchemeHint() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", prefersColorSchemeHeader)
		c.Header("Critical-CH", prefersColorSchemeHeader)
		// The page also depends on the stored preference cookie.
		c.Header("Vary", prefersColorSchemeHeader+", Cookie")
		c.Next()
	}
}

type themeForm struct {
	Dark     string `form:"dark"`
	Query    string `form:"q"`
	Category string `form:"category"`
}

// toggleTheme saves the requested theme, or flips the current one when the
// form does not say, and sends the browser back to the page.
func toggleTheme(site *Site, store themeStore, m *metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form themeForm
		if err := c.ShouldBind(&form); err != nil {
			log.Printf("Ignoring malformed theme form: %v", err)
		}

		dark, err := strconv.ParseBool(form.Dark)
		if err != nil {
			dark = !store.LoadPreference(c)
		}
		store.SavePreference(c, dark)
		m.themeChanges.WithLabelValues(themeName(dark)).Inc()

		filter := site.normalizeFilter(FilterState{Query: form.Query, Category: form.Category})
		c.Redirect(http.StatusSeeOther, themeRedirectURL(filter, dark))
	}
}

func themeRedirectURL(filter FilterState, dark bool) string {
	q := url.Values{}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	if filter.Category != CategoryAll {
		q.Set("category", filter.Category)
	}
	q.Set(themeOverrideParam, themeName(dark))

	target := "/?" + q.Encode()
	if filter.Active() {
		target += "#projects"
	}
	return target
}
