package ui

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/history"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

var entidadOptions = [][2]string{
	{string(domain.EntidadPropiedad), "Propiedad"},
	{string(domain.EntidadContrato), "Contrato"},
	{string(domain.EntidadFactura), "Factura"},
	{string(domain.EntidadPago), "Pago"},
}

var accionOptions = [][2]string{
	{string(domain.AccionCreacion), "Creación"},
	{string(domain.AccionActualizacion), "Actualización"},
	{string(domain.AccionEliminacion), "Eliminación"},
	{string(domain.AccionCambioEstado), "Cambio de estado"},
	{string(domain.AccionTransicion), "Transición"},
}

func historyPage(user domain.User, snap history.Snapshot, csrfFieldProvider func() gomponents.Node) gomponents.Node {
	sections := []gomponents.Node{historyFilterCard(snap, csrfFieldProvider)}

	switch snap.State {
	case history.StateLoading:
		sections = append(sections, html.Div(html.Class(cardClass()), html.P(html.Class(mutedClass()), gomponents.Text("Cargando historial..."))))
	case history.StateError:
		sections = append(sections, historyErrorCard(snap.Error, csrfFieldProvider))
	default:
		if snap.Stats != nil {
			sections = append(sections, historyStatsCard(*snap.Stats))
		}
		if snap.Selected != nil {
			sections = append(sections, historyDetailCard(*snap.Selected))
		}
		sections = append(sections, historyTableCard(snap), historyPaginationCard(snap.Page))
	}

	return appPage("Historial", "historial", user, sections...)
}

func historyFilterCard(snap history.Snapshot, csrfFieldProvider func() gomponents.Node) gomponents.Node {
	desde, hasta := "", ""
	if snap.Filter.FechaDesde != nil {
		desde = snap.Filter.FechaDesde.Format("2006-01-02")
	}
	if snap.Filter.FechaHasta != nil {
		hasta = snap.Filter.FechaHasta.Format("2006-01-02")
	}

	controls := []gomponents.Node{
		html.Form(
			html.Class("filter-form"),
			html.Method("post"),
			html.Action("/historial/filtrar"),
			csrfFieldProvider(),
			selectField("tipo_entidad", "Entidad", string(snap.Filter.TipoEntidad), entidadOptions),
			textField("entidad_id", "ID de entidad", snap.Filter.EntidadID),
			selectField("tipo_accion", "Acción", string(snap.Filter.TipoAccion), accionOptions),
			textField("responsable", "Responsable", snap.Filter.Responsable),
			dateField("fecha_desde", "Desde", desde),
			dateField("fecha_hasta", "Hasta", hasta),
			html.Div(
				html.Class("form-actions"),
				html.Button(html.Type("submit"), html.Class(primaryButtonClass()), gomponents.Text("Filtrar")),
			),
		),
	}
	if snap.Filtered {
		controls = append(controls, html.Form(
			html.Method("post"),
			html.Action("/historial/limpiar"),
			csrfFieldProvider(),
			html.Button(html.Type("submit"), html.Class(secondaryButtonClass()), gomponents.Text("Limpiar filtros")),
		))
	}
	controls = append(controls, html.Form(
		html.Method("post"),
		html.Action("/historial/exportar"),
		csrfFieldProvider(),
		html.Button(html.Type("submit"), html.Class(secondaryButtonClass()), gomponents.Text("Exportar PDF")),
	))

	return html.Div(html.Class(cardClass("toolbar")), gomponents.Group(controls))
}

func historyErrorCard(message string, csrfFieldProvider func() gomponents.Node) gomponents.Node {
	return html.Div(
		html.Class(cardClass("flash flash-error")),
		html.P(gomponents.Text("No fue posible cargar el historial: "+message)),
		html.Form(
			html.Method("post"),
			html.Action("/historial/recargar"),
			csrfFieldProvider(),
			html.Button(html.Type("submit"), html.Class(primaryButtonClass()), gomponents.Text("Reintentar")),
		),
	)
}

func historyStatsCard(stats domain.HistoryStats) gomponents.Node {
	entries := []gomponents.Node{
		html.Span(html.Class("stat"), html.Strong(gomponents.Text(strconv.FormatInt(stats.TotalCambios, 10))), gomponents.Text(" cambios en total")),
	}
	tipos := make([]string, 0, len(stats.PorEntidad))
	for tipo := range stats.PorEntidad {
		tipos = append(tipos, string(tipo))
	}
	sort.Strings(tipos)
	for _, tipo := range tipos {
		badge := history.EntityBadge(domain.TipoEntidad(tipo))
		entries = append(entries, html.Span(
			html.Class("stat"),
			gomponents.Text(badge.Label+": "+strconv.FormatInt(stats.PorEntidad[domain.TipoEntidad(tipo)], 10)),
		))
	}
	return html.Div(html.Class(cardClass("stats")), gomponents.Group(entries))
}

func historyTableCard(snap history.Snapshot) gomponents.Node {
	if snap.Page.Total == 0 {
		message := "No hay registros de historial."
		if snap.Filtered {
			message = "Ningún registro coincide con los filtros."
		}
		return emptyStateCard(message, "", "")
	}

	rows := make([]gomponents.Node, 0, len(snap.Page.Records))
	for i := range snap.Page.Records {
		rec := snap.Page.Records[i]
		badge := history.EntityBadge(rec.TipoEntidad)
		rows = append(rows, html.Tr(
			html.Td(
				html.I(html.Class("nav-icon"), gomponents.Attr("data-lucide", badge.Icon), gomponents.Attr("aria-hidden", "true")),
				gomponents.Text(" "+badge.Label),
			),
			html.Td(html.A(html.Href("/historial/"+url.PathEscape(rec.ID)), gomponents.Text(rec.EntidadID))),
			html.Td(statusLabel(string(rec.TipoAccion), history.ActionTone(rec.TipoAccion))),
			html.Td(gomponents.Text(strOrDash(rec.EstadoAnterior))),
			html.Td(gomponents.Text(strOrDash(rec.EstadoNuevo))),
			html.Td(gomponents.Text(strOrDash(rec.Responsable))),
			html.Td(gomponents.Text(history.FormatFecha(rec.Fecha))),
		))
	}
	return html.Div(html.Class(cardClass("table-wrap")), html.Table(
		html.THead(html.Tr(
			html.Th(gomponents.Text("Entidad")),
			html.Th(gomponents.Text("Registro")),
			html.Th(gomponents.Text("Acción")),
			html.Th(gomponents.Text("Estado anterior")),
			html.Th(gomponents.Text("Estado nuevo")),
			html.Th(gomponents.Text("Responsable")),
			html.Th(gomponents.Text("Fecha")),
		)),
		html.TBody(gomponents.Group(rows)),
	))
}

func historyPaginationCard(page history.Page) gomponents.Node {
	label := "Página " + strconv.Itoa(page.Number) + " de " + strconv.Itoa(page.TotalPages) +
		" (" + strconv.Itoa(page.Total) + " registros)"
	nodes := []gomponents.Node{html.P(html.Class(mutedClass()), gomponents.Text(label))}
	if page.Number > 1 {
		nodes = append(nodes, html.A(html.Href("/historial?pagina="+strconv.Itoa(page.Number-1)), gomponents.Text("Anterior")))
	}
	if page.Number < page.TotalPages {
		nodes = append(nodes, gomponents.Text(" "), html.A(html.Href("/historial?pagina="+strconv.Itoa(page.Number+1)), gomponents.Text("Siguiente")))
	}
	return html.Div(html.Class(cardClass()), gomponents.Group(nodes))
}

func historyDetailCard(rec domain.HistoryRecord) gomponents.Node {
	badge := history.EntityBadge(rec.TipoEntidad)
	fields := []gomponents.Node{
		html.H2(gomponents.Text("Detalle del registro")),
		html.P(gomponents.Text("Entidad: " + badge.Label + " " + rec.EntidadID)),
		html.P(gomponents.Text("Acción: "), statusLabel(string(rec.TipoAccion), history.ActionTone(rec.TipoAccion))),
		html.P(gomponents.Text("Estado: " + strOrDash(rec.EstadoAnterior) + " a " + strOrDash(rec.EstadoNuevo))),
		html.P(gomponents.Text("Responsable: " + strOrDash(rec.Responsable))),
		html.P(gomponents.Text("Fecha: " + history.FormatFecha(rec.Fecha))),
	}
	if rec.Motivo != "" {
		fields = append(fields, html.P(gomponents.Text("Motivo: "+rec.Motivo)))
	}
	if rec.Version != nil {
		fields = append(fields, html.P(gomponents.Text("Versión: "+strconv.FormatInt(*rec.Version, 10))))
	}
	if rec.IPOrigen != "" {
		fields = append(fields, html.P(gomponents.Text("IP de origen: "+rec.IPOrigen)))
	}
	fields = append(fields,
		snapshotSection("Antes", history.SnapshotPairs(rec.SnapshotAntes)),
		snapshotSection("Después", history.SnapshotPairs(rec.SnapshotDespues)),
		html.P(html.A(html.Href("/historial/cerrar"), gomponents.Text("Cerrar detalle"))),
	)
	return html.Div(html.Class(cardClass("detail")), gomponents.Group(fields))
}

func snapshotSection(title string, pairs []history.SnapshotPair) gomponents.Node {
	if len(pairs) == 0 {
		return gomponents.Node(nil)
	}
	items := make([]gomponents.Node, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, html.Li(html.Strong(gomponents.Text(p.Key+": ")), gomponents.Text(p.Value)))
	}
	return html.Div(
		html.H3(gomponents.Text(title)),
		html.Ul(html.Class("snapshot-list"), gomponents.Group(items)),
	)
}
