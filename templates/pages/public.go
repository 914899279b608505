package pages

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"kalemcms.com/app/pkg/view"
)

func Home(flash *view.Flash, vm view.HomePage) g.Node {
	return Layout("kalem", flash, vm.Categories,
		Section(Class("articles"),
			g.If(len(vm.Articles) == 0,
				P(Class("empty"), g.Text("Henüz makale yok.")),
			),
			g.Group(g.Map(vm.Articles, articleCard)),
		),
	)
}

func ArticleDetail(flash *view.Flash, vm view.ArticlePage) g.Node {
	return Layout(vm.Title, flash, vm.Categories,
		Div(Class("article"),
			H1(g.Text(vm.Title)),
			P(Class("meta"),
				A(Href("/category/"+vm.CategorySlug), g.Text(vm.CategoryName)),
			),
			Div(Class("body"), g.Text(vm.Body)),
		),
	)
}

func CategoryDetail(flash *view.Flash, vm view.CategoryPage) g.Node {
	return Layout(vm.Name, flash, vm.Categories,
		H1(g.Text(vm.Name)),
		Section(Class("articles"),
			g.If(len(vm.Articles) == 0,
				P(Class("empty"), g.Text("Bu kategoride makale yok.")),
			),
			g.Group(g.Map(vm.Articles, articleCard)),
		),
	)
}

func articleCard(a view.ArticleCard) g.Node {
	return Div(Class("card"),
		H2(A(Href("/article/"+a.Slug), g.Text(a.Title))),
		g.If(a.CategoryName != "",
			P(Class("meta"), A(Href("/category/"+a.CategorySlug), g.Text(a.CategoryName))),
		),
		P(Class("excerpt"), g.Text(a.Excerpt)),
	)
}

func Login(flash *view.Flash, vm view.LoginPage) g.Node {
	return Layout("Giriş", flash, vm.Categories,
		Div(Class("login-box"),
			H1(g.Text("Yönetici Girişi")),
			Form(Method("post"), Action("/admin/login"),
				Label(For("username"), g.Text("Kullanıcı adı")),
				Input(Type("text"), Name("username"), ID("username"), Value(vm.Form.Username)),
				Label(For("password"), g.Text("Şifre")),
				Input(Type("password"), Name("password"), ID("password")),
				Button(Type("submit"), g.Text("Giriş")),
			),
		),
	)
}
