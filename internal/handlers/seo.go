package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
)

// Pages listed in the sitemap.
var sitemapPaths = []string{"/", "/salary", "/hourly", "/hourly-multi", "/compare", "/freelance", "/burden"}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []sitemapURL
}

type sitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	lastMod := h.now().Format("2006-01-02")
	for _, p := range sitemapPaths {
		u := sitemapURL{Loc: h.siteURL + p, LastMod: lastMod, ChangeFreq: "weekly", Priority: "0.8"}
		if p == "/" {
			u.Loc, u.Priority = h.siteURL, "1.0"
		}
		set.URLs = append(set.URLs, u)
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	fmt.Fprint(w, xml.Header)
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		h.log.Error("encode sitemap", "err", err)
	}
}

func (h *Handler) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.siteURL)
}
