package site

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/neuralarc/site/content"
	"github.com/neuralarc/site/views"
)

func (a *App) handleHome(c echo.Context) error {
	lib, err := a.library()
	if err != nil {
		return err
	}
	t, _ := strconv.Atoi(c.QueryParam("t"))
	d := views.HomeData{
		Site:        a.siteConfig(),
		Lib:         lib,
		CSRF:        CsrfToken(c),
		Category:    lib.NormalizeCategory(c.QueryParam("category")),
		Service:     c.QueryParam("service"),
		Testimonial: content.Wrap(t, len(lib.Testimonials)),
	}
	if _, ok := lib.Service(d.Service); !ok {
		d.Service = ""
	}
	if st, ok := popFormFlash(c); ok {
		d.Form = st
	}
	return renderNode(c, http.StatusOK, views.Home(d))
}

func (a *App) handlePost(c echo.Context) error {
	lib, err := a.library()
	if err != nil {
		return err
	}
	post, err := lib.Post(c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return renderNode(c, http.StatusNotFound, views.NotFound(a.siteConfig(), lib))
	}
	if err != nil {
		return err
	}
	return renderNode(c, http.StatusOK, views.PostPage(views.PostData{
		Site: a.siteConfig(),
		Lib:  lib,
		CSRF: CsrfToken(c),
		Post: post,
	}))
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/#blog")
}

func handleFavicon(c echo.Context) error {
	b, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", b)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s\n",
		fileURL(a.Config.URL, "sitemap.xml")))
}

func handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	// lib may be nil; the error pages render without navigation then
	lib, _ := a.Content.Library()
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = renderNode(c, http.StatusNotFound, views.NotFound(a.siteConfig(), lib))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = renderNode(c, code, views.ServerError(a.siteConfig(), lib))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
