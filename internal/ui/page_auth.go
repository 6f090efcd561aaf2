package ui

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func loginPage(errMsg string) gomponents.Node {
	content := []gomponents.Node{
		html.H1(gomponents.Text("RentManager")),
		html.P(gomponents.Text("Inicie sesión con su correo y clave.")),
		html.Form(
			html.Method("post"),
			html.Action("/login"),
			html.Class("login-form"),
			html.Label(html.For("email"), gomponents.Text("Correo")),
			html.Input(
				html.Type("email"),
				html.ID("email"),
				html.Name("email"),
				html.AutoComplete("username"),
				html.Required(),
			),
			html.Label(html.For("password"), gomponents.Text("Clave")),
			html.Input(
				html.Type("password"),
				html.ID("password"),
				html.Name("password"),
				html.AutoComplete("current-password"),
				html.Required(),
			),
			html.Button(
				html.Type("submit"),
				html.Class("btn btn-primary"),
				gomponents.Text("Ingresar"),
			),
		),
	}
	if errMsg != "" {
		content = append([]gomponents.Node{html.P(html.Class("error"), gomponents.Text(errMsg))}, content...)
	}

	return html.HTML(
		html.Lang("es"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text("Iniciar sesión | RentManager")),
			html.Link(html.Rel("preconnect"), html.Href("https://fonts.googleapis.com")),
			html.Link(html.Rel("preconnect"), html.Href("https://fonts.gstatic.com"), gomponents.Attr("crossorigin", "")),
			html.Link(html.Rel("stylesheet"), html.Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
		),
		html.Body(
			html.Class("login-body"),
			html.Main(html.Class("login-wrap"), gomponents.Group(content)),
		),
	)
}
