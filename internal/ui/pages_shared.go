package ui

import (
	"strconv"
	"strings"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
	Icon  string
}

var navItems = []navItem{
	{Label: "Inicio", Href: "/", Key: "home", Icon: "house"},
	{Label: "Usuarios", Href: "/usuarios", Key: "usuarios", Icon: "users"},
	{Label: "Historial", Href: "/historial", Key: "historial", Icon: "scroll-text"},
}

func appPage(title, active string, user domain.User, body ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := "app-nav-link Link--secondary d-flex flex-items-center"
		if item.Key == active {
			className += " active"
		}
		nav = append(nav, A(
			Href(item.Href),
			Class(className),
			I(Class("nav-icon"), Attr("data-lucide", item.Icon), Attr("aria-hidden", "true")),
			Span(Text(item.Label)),
		))
	}

	userLabel := user.NombreCompleto()
	if strings.TrimSpace(userLabel) == "" {
		userLabel = user.Email
	}
	roleLabel := "Usuario"
	if tipo, ok := user.Tipo(); ok {
		roleLabel = roleLabels[tipo]
	}

	return HTML(
		Lang("es"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | RentManager")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			Link(Rel("stylesheet"), Href("/static/app.css")),
			Script(Src("https://unpkg.com/lucide@latest/dist/umd/lucide.min.js")),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(Class("app-shell"),
				Aside(
					Class("app-sidebar"),
					Div(
						Class("brand"),
						Strong(Text("RentManager")),
						P(Class("color-fg-muted text-small mb-0"), Text("Gestión de propiedades en arriendo")),
					),
					Nav(Class("app-nav"), Group(nav)),
				),
				Section(
					Class("app-main"),
					Div(
						Class("topbar"),
						Div(
							H1(Class("page-title"), Text(title)),
						),
						Div(
							P(Class("color-fg-muted text-small mb-2"), Text(userLabel+" ("+roleLabel+")")),
							Form(
								Method("post"),
								Action("/logout"),
								Button(Type("submit"), Class("btn btn-sm"), Text("Cerrar sesión")),
							),
						),
					),
					Div(Class("content"), Group(body)),
				),
			),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
		),
	)
}

var roleLabels = map[domain.TipoUsuario]string{
	domain.TipoAdministrador: "Administrador",
	domain.TipoContador:      "Contador",
	domain.TipoArrendatario:  "Arrendatario",
	domain.TipoPropietario:   "Propietario",
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("es"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | RentManager")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("stylesheet"), Href("/static/app.css")),
		),
		Body(
			Main(
				Class("layout"),
				H1(Class("page-title"), Text(title)),
				P(Text(message)),
				P(A(Href("/"), Text("Volver al inicio"))),
			),
		),
	)
}

func cardClass(extra ...string) string {
	parts := []string{"Box", "p-3", "mb-3", "card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "color-fg-muted text-small"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

func secondaryButtonClass() string {
	return "btn"
}

func statusLabel(text, tone string) Node {
	className := "Label"
	if tone != "" {
		className += " Label--" + tone
	}
	return Span(Class(className), Text(text))
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func quickFilterCard(placeholder string, extraControls ...Node) Node {
	controls := []Node{
		Div(
			Class("d-flex flex-items-center gap-2 flex-1"),
			Label(Class("sr-only"), Text("Filtro rápido")),
			Input(Type("search"), Class("form-control"), Placeholder(placeholder), data.Bind("q"), AutoComplete("off")),
		),
	}
	controls = append(controls, extraControls...)
	return Div(
		Class(cardClass("toolbar")),
		data.Signals(map[string]any{"q": ""}),
		Div(Class("d-flex flex-wrap flex-items-center gap-2"), Group(controls)),
	)
}

func emptyStateCard(message, ctaLabel, ctaHref string) Node {
	cta := Node(nil)
	if ctaLabel != "" && ctaHref != "" {
		cta = A(Href(ctaHref), Class(primaryButtonClass()), Text(ctaLabel))
	}
	return Div(
		Class(cardClass("blankslate")),
		P(Class("color-fg-muted mb-2"), Text(message)),
		cta,
	)
}

func formPage(user domain.User, title, active, action string, csrfFieldProvider func() Node, fields ...Node) Node {
	nodes := []Node{csrfFieldProvider()}
	nodes = append(nodes, fields...)
	return appPage(
		title,
		active,
		user,
		Div(
			Class(cardClass()),
			Form(
				Class("stack-form"),
				Method("post"),
				Action(action),
				Group(nodes),
				Div(Class("form-actions"), Button(Type("submit"), Class(primaryButtonClass()), Text("Guardar"))),
			),
		),
	)
}

func textField(name, label, value string) Node {
	return Group([]Node{
		Label(For(name), Text(label)),
		Input(Type("text"), ID(name), Name(name), Value(value), Class("form-control")),
	})
}

func selectField(name, label, selected string, options [][2]string) Node {
	opts := make([]Node, 0, len(options)+1)
	opts = append(opts, Option(Value(""), Text("-")))
	for _, o := range options {
		if o[0] == selected {
			opts = append(opts, Option(Value(o[0]), Selected(), Text(o[1])))
		} else {
			opts = append(opts, Option(Value(o[0]), Text(o[1])))
		}
	}
	return Group([]Node{
		Label(For(name), Text(label)),
		Select(ID(name), Name(name), Class("form-select"), Group(opts)),
	})
}

func dateField(name, label, value string) Node {
	return Group([]Node{
		Label(For(name), Text(label)),
		Input(Type("date"), ID(name), Name(name), Value(value), Class("form-control")),
	})
}
