package webtest

import (
	"net/url"
	"strings"
	"testing"
)

// NavBar wraps the shared navigation header.
type NavBar struct {
	doc *Document
}

func (n NavBar) Link(testID string) string {
	return n.doc.ByTestID(testID).Attr("href")
}

// DashboardPage is the page object for /dashboard.
type DashboardPage struct {
	h   *Harness
	Doc *Document
}

func OpenDashboard(h *Harness) *DashboardPage {
	return &DashboardPage{h: h, Doc: h.Get("/dashboard")}
}

func (p *DashboardPage) Nav() NavBar {
	return NavBar{doc: p.Doc}
}

// WaitForLoaded asserts the page is fully rendered: the layout, the goal
// card, and the summary grid must all be present.
func (p *DashboardPage) WaitForLoaded(t *testing.T) {
	t.Helper()
	p.Doc.ByTestID("main-nav")
	p.Doc.ByTestID("nav-dashboard")
	p.Doc.ByTestID("goal-progress-card")
	p.Doc.ByTestID("summary-cards")
}

// GoToGoalsHref returns where the goal card's "Ver Metas" action points.
func (p *DashboardPage) GoToGoalsHref(t *testing.T) string {
	t.Helper()
	return p.Doc.ByTestID("go-to-goals").Attr("href")
}

// ClickGoToGoals follows the goal card action and returns the metas page.
func (p *DashboardPage) ClickGoToGoals(t *testing.T) *Document {
	t.Helper()
	return p.h.Get(p.GoToGoalsHref(t))
}

// GastosPage is the page object for /gastos.
type GastosPage struct {
	h   *Harness
	Doc *Document
}

func OpenGastos(h *Harness) *GastosPage {
	return &GastosPage{h: h, Doc: h.Get("/gastos")}
}

// VisibleMonthKey reads the month the page is scoped to from the form's
// default date value.
func (p *GastosPage) VisibleMonthKey() string {
	defaultDate := p.Doc.ByTestID("date").Attr("value")
	if len(defaultDate) < 7 {
		return ""
	}
	return defaultDate[:7]
}

// Expense is the form input for AddExpense.
type Expense struct {
	Amount   string
	Note     string
	Date     string
	Category string
}

// AddExpense fills and submits the transaction form as an expense.
func (p *GastosPage) AddExpense(t *testing.T, e Expense) {
	t.Helper()

	if e.Category == "" {
		e.Category = "food"
	}

	// The form's fields must exist before submitting, like a browser.
	p.Doc.ByTestID("transaction-type")
	p.Doc.ByTestID("category")
	p.Doc.ByTestID("amount")
	p.Doc.ByTestID("note")
	p.Doc.ByTestID("date")
	p.Doc.ByTestID("submit-transaction")

	p.Doc = p.h.PostForm("/gastos", url.Values{
		"month":    {p.VisibleMonthKey()},
		"type":     {"expense"},
		"amount":   {e.Amount},
		"category": {e.Category},
		"date":     {e.Date},
		"note":     {e.Note},
	})
}

// TransactionRowByNote finds the first row whose text contains the note,
// case-insensitively. Returns nil when no row matches.
func (p *GastosPage) TransactionRowByNote(note string) *Element {
	list := p.Doc.ByTestID("transactions-list")
	for _, row := range list.AllByTestID("transaction-row") {
		if strings.Contains(strings.ToLower(row.Text()), strings.ToLower(note)) {
			return row
		}
	}
	return nil
}

// DeleteRow submits the row's delete form and reloads the list.
func (p *GastosPage) DeleteRow(t *testing.T, row *Element) {
	t.Helper()

	row.ByTestID("delete-transaction")
	id := row.FormValue("id")
	if id == "" {
		t.Fatal("Transaction row carries no id")
	}

	p.Doc = p.h.PostForm("/gastos/delete", url.Values{
		"month": {p.VisibleMonthKey()},
		"id":    {id},
	})
}

// PresupuestoPage is the page object for /presupuesto.
type PresupuestoPage struct {
	h   *Harness
	Doc *Document
}

func OpenPresupuesto(h *Harness) *PresupuestoPage {
	return &PresupuestoPage{h: h, Doc: h.Get("/presupuesto")}
}

// SetLimit submits the budget form for a category in the visible month.
func (p *PresupuestoPage) SetLimit(t *testing.T, month, category, limit string) {
	t.Helper()

	p.Doc.ByTestID("budget-category")
	p.Doc.ByTestID("budget-limit")
	p.Doc.ByTestID("submit-budget")

	p.Doc = p.h.PostForm("/presupuesto", url.Values{
		"month":    {month},
		"category": {category},
		"limit":    {limit},
	})
}

// RowByCategory finds the budget row for a category key.
func (p *PresupuestoPage) RowByCategory(category string) *Element {
	for _, row := range p.Doc.AllByTestID("budget-row") {
		if row.Attr("data-category") == category {
			return row
		}
	}
	return nil
}

// MetasPage is the page object for /metas.
type MetasPage struct {
	h   *Harness
	Doc *Document
}

func OpenMetas(h *Harness) *MetasPage {
	return &MetasPage{h: h, Doc: h.Get("/metas")}
}

// SetTarget submits the goal form for the visible month.
func (p *MetasPage) SetTarget(t *testing.T, month, target string) {
	t.Helper()

	p.Doc.ByTestID("goal-target")
	p.Doc.ByTestID("submit-goal")

	p.Doc = p.h.PostForm("/metas", url.Values{
		"month":  {month},
		"target": {target},
	})
}

// GoalPercent reads the rendered progress percent text.
func (p *MetasPage) GoalPercent() string {
	return p.Doc.ByTestID("goal-progress-percent").Text()
}

// ClearAllData runs the two-step clear flow through the UI: request the
// confirmation page, then submit the token it carries.
func ClearAllData(t *testing.T, h *Harness) {
	t.Helper()

	confirm := h.PostForm("/data/clear", url.Values{})
	confirm.ByTestID("clear-warning")
	confirm.ByTestID("confirm-clear")

	token := (&Element{t: t, node: confirm.root}).FormValue("token")
	if token == "" {
		t.Fatal("Clear confirmation page carries no token")
	}

	h.PostForm("/data/clear/confirm", url.Values{"token": {token}})
}
