package ui

import (
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

type homeCardData struct {
	Title       string
	Description string
	Href        string
	LinkLabel   string
}

func homePage(user domain.User, cards []homeCardData) gomponents.Node {
	nodes := make([]gomponents.Node, 0, len(cards))
	for i := range cards {
		c := cards[i]
		nodes = append(nodes, html.Div(html.Class(cardClass()), html.H2(gomponents.Text(c.Title)), html.P(gomponents.Text(c.Description)), html.A(html.Href(c.Href), gomponents.Text(c.LinkLabel))))
	}
	return appPage("Inicio", "home", user, html.Div(html.Class("grid"), gomponents.Group(nodes)))
}
