package components

import (
	"context"
	"time"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/araddon/dateparse"

	"github.com/templui/folio/internal/ctxkeys"
)

const (
	containerClass   = "container max-w-3xl pl-2 pr-2 mx-auto"
	contentClass     = "bg-slate-100 text-slate-600 pt-10 pb-16 border-t-8 border-slate-300 grow-[2]"
	h1Class          = "text-3xl sm:text-4xl tracking-tight text-center sm:text-left md:tracking-tighter leading-tight font-medium mb-12 mt-4 sm:mt-6"
	h2Class          = "text-2xl md:text-4xl tracking-tight md:tracking-tighter leading-tight font-medium mb-6"
	linkClass        = "underline hover:no-underline"
	buttonLinkClass  = "hover:invert-[.1] text-slate-100 bg-slate-700 inline-block rounded-lg px-5 py-3"
	buttonGroupClass = "flex justify-center"
	navLinkClass     = "text-lg text-slate-100"
	socialLinkClass  = "text-slate-300 hover:text-slate-100"
	transitionCommon = "transition ease-in-out duration-300"

	siteDescription = "Personal website and tech blog."
)

// PageMeta describes the document head of a page.
type PageMeta struct {
	Title       string
	Description string
	Image       string
}

type navItem struct {
	URL   string
	Title string
}

var menuItems = []navItem{
	{URL: "/", Title: "Home"},
	{URL: "/posts", Title: "Blog"},
	{URL: "/#contact", Title: "Contact"},
}

var socialLinks = []navItem{
	{URL: "mailto:mr@artem.rocks", Title: "Email"},
	{URL: "https://github.com/artemave", Title: "GitHub"},
	{URL: "https://www.linkedin.com/in/artem-avetisyan/", Title: "LinkedIn"},
}

// Class merges Tailwind class lists, later classes winning conflicts.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}

// siteURL is the configured site address, empty when rendering without
// config so links stay root-relative.
func siteURL(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		return cfg.AppURL
	}
	return ""
}

func canonicalURL(ctx context.Context) string {
	base, path := siteURL(ctx), ctxkeys.URLPath(ctx)
	if base == "" || path == "" {
		return ""
	}
	return base + path
}

func metaDescription(meta PageMeta) string {
	if meta.Description != "" {
		return meta.Description
	}
	return siteDescription
}

func menuItemClass(ctx context.Context, item navItem) string {
	if item.URL == ctxkeys.URLPath(ctx) {
		return Class(navLinkClass, "underline")
	}
	return navLinkClass
}

func socialItemClass(i int) string {
	if i > 0 {
		return Class(socialLinkClass, "ml-8")
	}
	return socialLinkClass
}

// displayDate parses an ISO-ish date for the <time> element. ok is false
// when the date cannot be parsed and should be shown as written.
func displayDate(date string) (iso, human string, ok bool) {
	t, err := dateparse.ParseAny(date)
	if err != nil {
		return "", "", false
	}
	return t.Format(time.DateOnly), t.Format("January 2, 2006"), true
}
