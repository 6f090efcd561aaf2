package ui

import (
	"net/url"
	"sort"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/history"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/users"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

type userRowData struct {
	Nombre     string
	Apellido   string
	Email      string
	Rol        string
	Estado     string
	Tone       string
	Fecha      string
	URL        string
	Eliminable bool
	DeleteURL  string
	Hidden     map[string]string
}

type usersListPageData struct {
	User          domain.User
	Rows          []userRowData
	Query         string
	Tipo          string
	Column        string
	Ascending     bool
	CSRFFieldFunc func() gomponents.Node
}

var tipoOptions = [][2]string{
	{string(domain.TipoAdministrador), "Administrador"},
	{string(domain.TipoContador), "Contador"},
	{string(domain.TipoArrendatario), "Arrendatario"},
	{string(domain.TipoPropietario), "Propietario"},
}

var estadoOptions = [][2]string{
	{string(domain.EstadoActivo), "Activo"},
	{string(domain.EstadoInactivo), "Inactivo"},
	{string(domain.EstadoSuspendido), "Suspendido"},
	{string(domain.EstadoEliminado), "Eliminado"},
}

func usersListPage(d usersListPageData) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(d.Rows))
	for i := range d.Rows {
		row := d.Rows[i]
		actions := []gomponents.Node{html.A(html.Href(row.URL+"/editar"), gomponents.Text("Editar"))}
		if row.Eliminable {
			hidden := make([]gomponents.Node, 0, len(row.Hidden)+1)
			hidden = append(hidden, d.CSRFFieldFunc())
			keys := make([]string, 0, len(row.Hidden))
			for k := range row.Hidden {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				hidden = append(hidden, html.Input(html.Type("hidden"), html.Name(k), html.Value(row.Hidden[k])))
			}
			actions = append(actions, html.Form(html.Method("post"), html.Action(row.DeleteURL), gomponents.Group(hidden), html.Button(html.Type("submit"), html.Class(secondaryButtonClass()), gomponents.Text("Eliminar"))))
		}
		rows = append(rows, html.Tr(data.Show(containsExpr(row.Nombre+" "+row.Apellido+" "+row.Email)), html.Td(html.A(html.Href(row.URL), gomponents.Text(row.Nombre))), html.Td(gomponents.Text(row.Apellido)), html.Td(gomponents.Text(row.Email)), html.Td(gomponents.Text(row.Rol)), html.Td(statusLabel(row.Estado, row.Tone)), html.Td(gomponents.Text(row.Fecha)), html.Td(gomponents.Group(actions))))
	}

	table := gomponents.Node(emptyStateCard("No hay usuarios que coincidan con los criterios.", "+ Nuevo usuario", "/usuarios/nuevo"))
	if len(d.Rows) > 0 {
		table = html.Div(html.Class(cardClass("table-wrap")), html.Table(html.THead(html.Tr(
			html.Th(sortLink(d, users.ColNombre, "Nombre")),
			html.Th(sortLink(d, users.ColApellido, "Apellido")),
			html.Th(sortLink(d, users.ColEmail, "Email")),
			html.Th(gomponents.Text("Rol")),
			html.Th(sortLink(d, users.ColEstado, "Estado")),
			html.Th(sortLink(d, users.ColFecha, "Registro")),
			html.Th(gomponents.Text("Acciones")),
		)), html.TBody(gomponents.Group(rows))))
	}

	return appPage(
		"Usuarios",
		"usuarios",
		d.User,
		html.Div(html.Class(cardClass()), html.A(html.Href("/usuarios/nuevo"), gomponents.Text("+ Nuevo usuario")), gomponents.Text(" "), tipoFilterLinks(d.Tipo)),
		html.Div(
			data.Signals(map[string]any{"q": d.Query}),
			html.Div(html.Class(cardClass()), html.Label(gomponents.Text("Filtro rápido")), html.Input(html.Type("text"), data.Bind("q"), html.Placeholder("Filtrar por nombre, apellido o correo"))),
			table,
		),
	)
}

// sortLink renders a column header that re-sorts the list: clicking the
// active column flips the direction, clicking a new one resets to ascending.
func sortLink(d usersListPageData, column, label string) gomponents.Node {
	nextColumn, nextAsc := users.NextSort(d.Column, d.Ascending, column)
	q := url.Values{}
	if d.Query != "" {
		q.Set("q", d.Query)
	}
	if d.Tipo != "" {
		q.Set("tipo", d.Tipo)
	}
	q.Set("orden", nextColumn)
	if nextAsc {
		q.Set("dir", "asc")
	} else {
		q.Set("dir", "desc")
	}
	if d.Column == column {
		if d.Ascending {
			label += " ↑"
		} else {
			label += " ↓"
		}
	}
	return html.A(html.Href("/usuarios?"+q.Encode()), gomponents.Text(label))
}

func tipoFilterLinks(active string) gomponents.Node {
	links := []gomponents.Node{html.A(html.Href("/usuarios"), html.Class(filterLinkClass(active == "")), gomponents.Text("Todos"))}
	for _, o := range tipoOptions {
		links = append(links, gomponents.Text(" "), html.A(html.Href("/usuarios?tipo="+url.QueryEscape(o[0])), html.Class(filterLinkClass(active == o[0])), gomponents.Text(o[1])))
	}
	return html.Span(html.Class("filter-links"), gomponents.Group(links))
}

func filterLinkClass(active bool) string {
	if active {
		return "Link--primary text-bold"
	}
	return "Link--secondary"
}

func userFormPage(user domain.User, title, action string, form domain.UserForm, csrfFieldProvider func() gomponents.Node) gomponents.Node {
	return formPage(
		user,
		title,
		"usuarios",
		action,
		csrfFieldProvider,
		textField("nombre", "Nombre", form.Nombre),
		textField("apellido", "Apellido", form.Apellido),
		textField("email", "Correo", form.Email),
		textField("tipo_documento", "Tipo de documento", form.TipoDocumento),
		textField("numero_documento", "Número de documento", form.NumeroDocumento),
		textField("telefono", "Teléfono", form.Telefono),
		selectField("estado", "Estado", string(form.Estado), estadoOptions),
		selectField("tipo_usuario", "Tipo de usuario", form.TipoUsuario, tipoOptions),
		html.H2(gomponents.Text("Administrador")),
		textField("cargo", "Cargo", form.Cargo),
		textField("nivel_acceso", "Nivel de acceso", form.NivelAcceso),
		html.H2(gomponents.Text("Contador")),
		textField("numero_tarjeta_profesional", "Tarjeta profesional", form.NumeroTarjetaProfesional),
		textField("especialidad", "Especialidad", form.Especialidad),
		html.H2(gomponents.Text("Arrendatario")),
		textField("estado_civil", "Estado civil", form.EstadoCivil),
		textField("ocupacion", "Ocupación", form.Ocupacion),
		html.H2(gomponents.Text("Propietario")),
		textField("cuenta_bancaria", "Cuenta bancaria", form.CuentaBancaria),
		textField("banco", "Banco", form.Banco),
	)
}

func userDetailPage(user domain.User, u domain.User, related users.RelatedRecords) gomponents.Node {
	roleLabel := "Usuario"
	if tipo, ok := u.Tipo(); ok {
		roleLabel = roleLabels[tipo]
	}

	info := html.Div(
		html.Class(cardClass()),
		html.P(gomponents.Text("Nombre: "+u.NombreCompleto())),
		html.P(gomponents.Text("Correo: "+strOrDash(u.Email))),
		html.P(gomponents.Text("Documento: "+strOrDash(u.TipoDocumento+" "+u.NumeroDocumento))),
		html.P(gomponents.Text("Teléfono: "+strOrDash(u.Telefono))),
		html.P(gomponents.Text("Rol: "+roleLabel)),
		html.P(gomponents.Text("Registrado: "+history.FormatFecha(u.FechaRegistro))),
		statusLabel(string(u.Estado), estadoTone(u.Estado)),
		html.P(html.A(html.Href("/usuarios/"+url.PathEscape(u.ID)+"/editar"), gomponents.Text("Editar usuario"))),
	)

	sections := []gomponents.Node{info, roleCard(u)}
	if u.Propietario != nil || u.Arrendatario != nil {
		sections = append(sections,
			propertiesCard(related.Propiedades),
			contractsCard(related.Contratos),
			invoicesCard(related.Facturas),
			paymentsCard(related.Pagos),
		)
	}

	return appPage("Usuario: "+u.NombreCompleto(), "usuarios", user, sections...)
}

func roleCard(u domain.User) gomponents.Node {
	switch {
	case u.Administrador != nil:
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Administrador")), html.P(gomponents.Text("Cargo: "+strOrDash(u.Administrador.Cargo))), html.P(gomponents.Text("Nivel de acceso: "+strOrDash(u.Administrador.NivelAcceso))))
	case u.Contador != nil:
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Contador")), html.P(gomponents.Text("Tarjeta profesional: "+strOrDash(u.Contador.NumeroTarjetaProfesional))), html.P(gomponents.Text("Especialidad: "+strOrDash(u.Contador.Especialidad))))
	case u.Arrendatario != nil:
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Arrendatario")), html.P(gomponents.Text("Estado civil: "+strOrDash(u.Arrendatario.EstadoCivil))), html.P(gomponents.Text("Ocupación: "+strOrDash(u.Arrendatario.Ocupacion))))
	case u.Propietario != nil:
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Propietario")), html.P(gomponents.Text("Cuenta bancaria: "+strOrDash(u.Propietario.CuentaBancaria))), html.P(gomponents.Text("Banco: "+strOrDash(u.Propietario.Banco))))
	default:
		return html.Div(html.Class(cardClass()), html.P(html.Class(mutedClass()), gomponents.Text("Sin información de rol.")))
	}
}

func propertiesCard(items []domain.Property) gomponents.Node {
	if len(items) == 0 {
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Propiedades")), html.P(html.Class(mutedClass()), gomponents.Text("Sin propiedades relacionadas.")))
	}
	rows := make([]gomponents.Node, 0, len(items))
	for i := range items {
		p := items[i]
		rows = append(rows, html.Tr(html.Td(gomponents.Text(p.ID)), html.Td(gomponents.Text(p.Direccion)), html.Td(gomponents.Text(p.Ciudad)), html.Td(gomponents.Text(p.Estado)), html.Td(gomponents.Text(history.FormatFecha(p.FechaRegistro)))))
	}
	return html.Div(html.Class(cardClass("table-wrap")), html.H2(gomponents.Text("Propiedades")), html.Table(html.THead(html.Tr(html.Th(gomponents.Text("ID")), html.Th(gomponents.Text("Dirección")), html.Th(gomponents.Text("Ciudad")), html.Th(gomponents.Text("Estado")), html.Th(gomponents.Text("Registro")))), html.TBody(gomponents.Group(rows))))
}

func contractsCard(items []domain.Contract) gomponents.Node {
	if len(items) == 0 {
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Contratos")), html.P(html.Class(mutedClass()), gomponents.Text("Sin contratos relacionados.")))
	}
	rows := make([]gomponents.Node, 0, len(items))
	for i := range items {
		c := items[i]
		rows = append(rows, html.Tr(html.Td(gomponents.Text(c.ID)), html.Td(gomponents.Text(c.PropiedadID)), html.Td(gomponents.Text(c.Estado)), html.Td(gomponents.Text(history.FormatFecha(c.FechaInicio))), html.Td(gomponents.Text(formatFechaPtr(c.FechaFin)))))
	}
	return html.Div(html.Class(cardClass("table-wrap")), html.H2(gomponents.Text("Contratos")), html.Table(html.THead(html.Tr(html.Th(gomponents.Text("ID")), html.Th(gomponents.Text("Propiedad")), html.Th(gomponents.Text("Estado")), html.Th(gomponents.Text("Inicio")), html.Th(gomponents.Text("Fin")))), html.TBody(gomponents.Group(rows))))
}

func invoicesCard(items []domain.Invoice) gomponents.Node {
	if len(items) == 0 {
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Facturas")), html.P(html.Class(mutedClass()), gomponents.Text("Sin facturas relacionadas.")))
	}
	rows := make([]gomponents.Node, 0, len(items))
	for i := range items {
		f := items[i]
		rows = append(rows, html.Tr(html.Td(gomponents.Text(f.ID)), html.Td(gomponents.Text(f.ContratoID)), html.Td(gomponents.Text(f.Estado)), html.Td(gomponents.Text(formatMonto(f.Monto))), html.Td(gomponents.Text(history.FormatFecha(f.FechaEmision)))))
	}
	return html.Div(html.Class(cardClass("table-wrap")), html.H2(gomponents.Text("Facturas")), html.Table(html.THead(html.Tr(html.Th(gomponents.Text("ID")), html.Th(gomponents.Text("Contrato")), html.Th(gomponents.Text("Estado")), html.Th(gomponents.Text("Monto")), html.Th(gomponents.Text("Emisión")))), html.TBody(gomponents.Group(rows))))
}

func paymentsCard(items []domain.Payment) gomponents.Node {
	if len(items) == 0 {
		return html.Div(html.Class(cardClass()), html.H2(gomponents.Text("Pagos")), html.P(html.Class(mutedClass()), gomponents.Text("Sin pagos relacionados.")))
	}
	rows := make([]gomponents.Node, 0, len(items))
	for i := range items {
		p := items[i]
		rows = append(rows, html.Tr(html.Td(gomponents.Text(p.ID)), html.Td(gomponents.Text(p.FacturaID)), html.Td(gomponents.Text(p.Estado)), html.Td(gomponents.Text(formatMonto(p.Monto))), html.Td(gomponents.Text(history.FormatFecha(p.Fecha)))))
	}
	return html.Div(html.Class(cardClass("table-wrap")), html.H2(gomponents.Text("Pagos")), html.Table(html.THead(html.Tr(html.Th(gomponents.Text("ID")), html.Th(gomponents.Text("Factura")), html.Th(gomponents.Text("Estado")), html.Th(gomponents.Text("Monto")), html.Th(gomponents.Text("Fecha")))), html.TBody(gomponents.Group(rows))))
}
