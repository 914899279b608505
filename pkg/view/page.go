package view

// Nav category entry, rendered on every public page.
type NavCategory struct {
	Name string
	Slug string
}

type ArticleCard struct {
	Title        string
	Slug         string
	Excerpt      string
	CategoryName string
	CategorySlug string
}

type HomePage struct {
	Categories []NavCategory
	Articles   []ArticleCard
}

type ArticlePage struct {
	Categories   []NavCategory
	Title        string
	Body         string
	CategoryName string
	CategorySlug string
}

type CategoryPage struct {
	Categories []NavCategory
	Name       string
	Articles   []ArticleCard
}

type LoginForm struct {
	Username string
}

type LoginPage struct {
	Categories []NavCategory
	Form       LoginForm
}

type AdminRow struct {
	ID        uint
	Username  string
	CreatedAt string
}

type CategoryRow struct {
	ID   uint
	Name string
	Slug string
}

type CategoryForm struct {
	ID   uint
	Name string
}

type CategoryOption struct {
	ID   uint
	Name string
}

type ArticleRow struct {
	ID           uint
	Title        string
	Slug         string
	CategoryName string
}

type ArticleForm struct {
	ID    uint
	Title string
	Body  string
}

// Pagination mirrors the zero-based page cursor of the article listing.
type Pagination struct {
	Current int
	Last    int
}
