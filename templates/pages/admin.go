package pages

import (
	"strconv"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"kalemcms.com/app/pkg/view"
)

func AdminDashboard(flash *view.Flash, username string) g.Node {
	return AdminLayout("Panel", username, flash,
		H1(g.Textf("Hoş geldin, %s", username)),
		Ul(Class("admin-menu"),
			Li(A(Href("/admin/categories"), g.Text("Kategorileri yönet"))),
			Li(A(Href("/admin/articles"), g.Text("Makaleleri yönet"))),
			Li(A(Href("/admin/list"), g.Text("Yönetici hesapları"))),
		),
	)
}

func AdminList(flash *view.Flash, username string, rows []view.AdminRow) g.Node {
	return AdminLayout("Yöneticiler", username, flash,
		Div(Class("page-head"),
			H1(g.Text("Yöneticiler")),
			A(Class("btn"), Href("/admin/add"), g.Text("Yeni yönetici")),
		),
		Table(Class("table"),
			THead(Tr(Th(g.Text("ID")), Th(g.Text("Kullanıcı adı")), Th(g.Text("Kayıt")), Th())),
			TBody(
				g.Group(g.Map(rows, func(r view.AdminRow) g.Node {
					return Tr(
						Td(g.Textf("%d", r.ID)),
						Td(g.Text(r.Username)),
						Td(g.Text(r.CreatedAt)),
						Td(
							Form(Method("post"), Action("/admin/remove"), Class("inline"),
								Input(Type("hidden"), Name("id"), Value(strconv.FormatUint(uint64(r.ID), 10))),
								Button(Type("submit"), Class("btn-danger"), g.Text("Sil")),
							),
						),
					)
				})),
			),
		),
	)
}

func AdminAdd(flash *view.Flash, username string) g.Node {
	return AdminLayout("Yeni yönetici", username, flash,
		H1(g.Text("Yeni yönetici")),
		Form(Method("post"), Action("/admin/add"),
			Label(For("username"), g.Text("Kullanıcı adı")),
			Input(Type("text"), Name("username"), ID("username")),
			Label(For("password"), g.Text("Şifre")),
			Input(Type("password"), Name("password"), ID("password")),
			Button(Type("submit"), g.Text("Kaydet")),
		),
	)
}

func AdminCategories(flash *view.Flash, username string, rows []view.CategoryRow) g.Node {
	return AdminLayout("Kategoriler", username, flash,
		Div(Class("page-head"),
			H1(g.Text("Kategoriler")),
			A(Class("btn"), Href("/admin/categories/new"), g.Text("Yeni kategori")),
		),
		Table(Class("table"),
			THead(Tr(Th(g.Text("ID")), Th(g.Text("Ad")), Th(g.Text("Slug")), Th())),
			TBody(
				g.Group(g.Map(rows, func(r view.CategoryRow) g.Node {
					return Tr(
						Td(g.Textf("%d", r.ID)),
						Td(g.Text(r.Name)),
						Td(g.Text(r.Slug)),
						Td(
							A(Class("btn"), Href("/admin/categories/edit/"+strconv.FormatUint(uint64(r.ID), 10)), g.Text("Düzenle")),
							Form(Method("post"), Action("/admin/categories/delete"), Class("inline"),
								Input(Type("hidden"), Name("id"), Value(strconv.FormatUint(uint64(r.ID), 10))),
								Button(Type("submit"), Class("btn-danger"), g.Text("Sil")),
							),
						),
					)
				})),
			),
		),
	)
}

func AdminCategoryNew(flash *view.Flash, username string) g.Node {
	return AdminLayout("Yeni kategori", username, flash,
		H1(g.Text("Yeni kategori")),
		Form(Method("post"), Action("/admin/categories/save"),
			Label(For("category"), g.Text("Kategori adı")),
			Input(Type("text"), Name("category"), ID("category")),
			Button(Type("submit"), g.Text("Kaydet")),
		),
	)
}

func AdminCategoryEdit(flash *view.Flash, username string, form view.CategoryForm) g.Node {
	return AdminLayout("Kategori düzenle", username, flash,
		H1(g.Text("Kategori düzenle")),
		Form(Method("post"), Action("/admin/categories/edit/update"),
			Input(Type("hidden"), Name("id"), Value(strconv.FormatUint(uint64(form.ID), 10))),
			Label(For("name"), g.Text("Kategori adı")),
			Input(Type("text"), Name("name"), ID("name"), Value(form.Name)),
			Button(Type("submit"), g.Text("Güncelle")),
		),
	)
}

func AdminArticles(flash *view.Flash, username string, rows []view.ArticleRow, page view.Pagination) g.Node {
	return AdminLayout("Makaleler", username, flash,
		Div(Class("page-head"),
			H1(g.Text("Makaleler")),
			A(Class("btn"), Href("/admin/articles/new"), g.Text("Yeni makale")),
		),
		Table(Class("table"),
			THead(Tr(Th(g.Text("ID")), Th(g.Text("Başlık")), Th(g.Text("Kategori")), Th())),
			TBody(
				g.Group(g.Map(rows, func(r view.ArticleRow) g.Node {
					return Tr(
						Td(g.Textf("%d", r.ID)),
						Td(A(Href("/article/"+r.Slug), g.Text(r.Title))),
						Td(g.Text(r.CategoryName)),
						Td(
							A(Class("btn"), Href("/admin/articles/edit/"+strconv.FormatUint(uint64(r.ID), 10)), g.Text("Düzenle")),
							Form(Method("post"), Action("/admin/articles/delete"), Class("inline"),
								Input(Type("hidden"), Name("id"), Value(strconv.FormatUint(uint64(r.ID), 10))),
								Button(Type("submit"), Class("btn-danger"), g.Text("Sil")),
							),
						),
					)
				})),
			),
		),
		pageControls(page),
	)
}

func pageControls(p view.Pagination) g.Node {
	if p.Last < 1 {
		return nil
	}
	return Nav(Class("pager"),
		g.If(p.Current > 0,
			A(Class("btn"), Href("/admin/articles/page/"+strconv.Itoa(p.Current-1)), g.Text("« Önceki")),
		),
		Span(Class("pager-state"), g.Textf("%d / %d", p.Current+1, p.Last+1)),
		g.If(p.Current < p.Last,
			A(Class("btn"), Href("/admin/articles/page/"+strconv.Itoa(p.Current+1)), g.Text("Sonraki »")),
		),
	)
}

func AdminArticleNew(flash *view.Flash, username string, cats []view.CategoryOption) g.Node {
	return AdminLayout("Yeni makale", username, flash,
		H1(g.Text("Yeni makale")),
		Form(Method("post"), Action("/admin/articles/save"),
			Label(For("title"), g.Text("Başlık")),
			Input(Type("text"), Name("title"), ID("title")),
			Label(For("categoryId"), g.Text("Kategori")),
			Select(Name("categoryId"), ID("categoryId"),
				g.Group(g.Map(cats, func(c view.CategoryOption) g.Node {
					return Option(Value(strconv.FormatUint(uint64(c.ID), 10)), g.Text(c.Name))
				})),
			),
			Label(For("body"), g.Text("İçerik")),
			Textarea(Name("body"), ID("body"), Rows("12")),
			Button(Type("submit"), g.Text("Kaydet")),
		),
	)
}

func AdminArticleEdit(flash *view.Flash, username string, form view.ArticleForm) g.Node {
	return AdminLayout("Makale düzenle", username, flash,
		H1(g.Text("Makale düzenle")),
		Form(Method("post"), Action("/admin/articles/edit/update"),
			Input(Type("hidden"), Name("id"), Value(strconv.FormatUint(uint64(form.ID), 10))),
			Label(For("title"), g.Text("Başlık")),
			Input(Type("text"), Name("title"), ID("title"), Value(form.Title)),
			Label(For("body"), g.Text("İçerik")),
			Textarea(Name("body"), ID("body"), Rows("12"), g.Text(form.Body)),
			Button(Type("submit"), g.Text("Güncelle")),
		),
	)
}
