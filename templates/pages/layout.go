package pages

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"kalemcms.com/app/pkg/view"
)

// Layout is the public shell: top nav with the category list, flash banner,
// page content.
func Layout(title string, flash *view.Flash, cats []view.NavCategory, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("tr"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Link(Rel("stylesheet"), Href("/assets/css/main.css")),
				TitleEl(g.Text(title)),
			),
			Body(
				Nav(Class("nav"),
					Div(Class("brand"), A(Href("/"), g.Text("kalem"))),
					Div(Class("nav-links"),
						g.Group(g.Map(cats, func(c view.NavCategory) g.Node {
							return A(Href("/category/"+c.Slug), g.Text(c.Name))
						})),
					),
				),
				FlashBanner(flash),
				Main(Class("container"), g.Group(children)),
				Footer(Class("footer"),
					P(Small(g.Text("kalem cms"))),
				),
			),
		),
	)
}

// AdminLayout is the panel shell: sidebar with section links, flash banner.
func AdminLayout(title, username string, flash *view.Flash, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("tr"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Link(Rel("stylesheet"), Href("/assets/css/admin.css")),
				TitleEl(g.Text(title+" — Panel")),
			),
			Body(
				Nav(Class("admin-nav"),
					Div(Class("brand"), A(Href("/admin"), g.Text("kalem panel"))),
					Div(Class("nav-links"),
						A(Href("/admin/categories"), g.Text("Kategoriler")),
						A(Href("/admin/articles"), g.Text("Makaleler")),
						A(Href("/admin/list"), g.Text("Yöneticiler")),
					),
					Div(Class("nav-right"),
						g.If(username != "", Span(Class("whoami"), g.Text(username))),
						A(Href("/admin/logout"), g.Text("Çıkış")),
					),
				),
				FlashBanner(flash),
				Main(Class("container"), g.Group(children)),
			),
		),
	)
}

func FlashBanner(f *view.Flash) g.Node {
	if f == nil {
		return nil
	}
	return Div(Class("flash flash-"+string(f.Kind)), g.Text(f.Message))
}
