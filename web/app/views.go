package app

import (
	"github.com/JaimeStill/loyalty-lab/internal/pages"
	"github.com/JaimeStill/loyalty-lab/pkg/web"
)

// Route names, in declaration order.
const (
	RouteLoyalty  = "Loyalty Page"
	RouteRegister = "Register"
	RouteSummary  = "Summary"
)

var routeTable = []pages.Route{
	{
		Path: "/",
		Name: RouteLoyalty,
		View: web.ViewDef{Template: "loyalty.html", Title: "Loyalty Program", Bundle: "app"},
	},
	{
		Path: "/register",
		Name: RouteRegister,
		View: web.ViewDef{Template: "register.html", Title: "Register", Bundle: "app"},
	},
	{
		Path: "/summary",
		Name: RouteSummary,
		View: web.ViewDef{Template: "summary.html", Title: "Summary", Bundle: "app"},
	},
}

var errorViews = []web.ViewDef{
	{Template: "404.html", Title: "Not Found", Bundle: "app"},
}

var publicFiles = []string{
	"app.css",
	"site.webmanifest",
}

// Routes builds the page route table.
func Routes() (*pages.Table, error) {
	return pages.NewTable(routeTable...)
}
