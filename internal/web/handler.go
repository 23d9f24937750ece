// Package web serves the server-rendered pages. Every element the UI
// contract depends on carries a stable data-testid attribute; forms post
// intents back to this package and redirect to the page they came from.
package web

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
)

// Handler renders the four pages and receives their form posts.
type Handler struct {
	state     *service.StateService
	dashboard *service.DashboardService
	guard     *service.ClearGuard
	templates *template.Template
}

// NewHandler parses the embedded templates and returns a ready Handler.
func NewHandler(state *service.StateService, dashboard *service.DashboardService, guard *service.ClearGuard) (*Handler, error) {
	t, err := template.New("").Funcs(templateFuncs()).ParseFS(TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		state:     state,
		dashboard: dashboard,
		guard:     guard,
		templates: t,
	}, nil
}

// Routes mounts the page and form routes on the given router. Unknown
// paths redirect to the dashboard.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.redirectToDashboard)
	r.Get("/dashboard", h.Dashboard)
	r.Get("/gastos", h.Gastos)
	r.Get("/presupuesto", h.Presupuesto)
	r.Get("/metas", h.Metas)

	r.Post("/gastos", h.AddTransaction)
	r.Post("/gastos/delete", h.DeleteTransaction)
	r.Post("/gastos/seed", h.SeedDemo)
	r.Post("/presupuesto", h.UpsertBudget)
	r.Post("/presupuesto/delete", h.DeleteBudget)
	r.Post("/metas", h.UpsertGoal)
	r.Post("/metas/delete", h.DeleteGoal)
	r.Post("/data/clear", h.RequestClear)
	r.Post("/data/clear/confirm", h.ConfirmClear)

	r.NotFound(h.redirectToDashboard)
}

type categoryOption struct {
	Key   string
	Label string
}

// pageData is the context every template renders with.
type pageData struct {
	Title             string
	Month             string
	Path              string
	DefaultDate       string
	Snapshot          service.Snapshot
	IncomeCategories  []categoryOption
	ExpenseCategories []categoryOption
	ClearToken        string
}

func (h *Handler) pageData(r *http.Request, path string) pageData {
	month := visibleMonth(r)
	return pageData{
		Title:             model.MonthTitle(month),
		Month:             month,
		Path:              path,
		DefaultDate:       month + "-01",
		Snapshot:          h.dashboard.Snapshot(month),
		IncomeCategories:  categoryOptions(model.IncomeCategories),
		ExpenseCategories: categoryOptions(model.ExpenseCategories),
	}
}

// visibleMonth reads the month from the query, falling back to the
// current month for absent or malformed values.
func visibleMonth(r *http.Request) string {
	month := r.URL.Query().Get("month")
	if model.ValidMonthKey(month) {
		return month
	}
	return model.MonthKey(time.Now())
}

func formMonth(r *http.Request) string {
	month := r.PostFormValue("month")
	if model.ValidMonthKey(month) {
		return month
	}
	return model.MonthKey(time.Now())
}

func categoryOptions(keys []string) []categoryOption {
	out := make([]categoryOption, len(keys))
	for i, key := range keys {
		out[i] = categoryOption{Key: key, Label: model.CategoryLabel(key)}
	}
	return out
}

func (h *Handler) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("web: failed to render %s: %v", name, err)
	}
}

func (h *Handler) redirectToDashboard(w http.ResponseWriter, r *http.Request) {
	target := "/dashboard"
	if month := r.URL.Query().Get("month"); model.ValidMonthKey(month) {
		target += "?month=" + month
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func redirectTo(w http.ResponseWriter, r *http.Request, path, month string) {
	http.Redirect(w, r, path+"?month="+month, http.StatusSeeOther)
}

// Dashboard renders the month overview: summary cards, savings goal,
// top-category insight, category chart, and budget alerts.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, "dashboard.html", h.pageData(r, "/dashboard"))
}

// Gastos renders the ledger page with the add-transaction form.
func (h *Handler) Gastos(w http.ResponseWriter, r *http.Request) {
	h.render(w, "gastos.html", h.pageData(r, "/gastos"))
}

// Presupuesto renders the per-category budget limits page.
func (h *Handler) Presupuesto(w http.ResponseWriter, r *http.Request) {
	h.render(w, "presupuesto.html", h.pageData(r, "/presupuesto"))
}

// Metas renders the savings goal page.
func (h *Handler) Metas(w http.ResponseWriter, r *http.Request) {
	h.render(w, "metas.html", h.pageData(r, "/metas"))
}

// AddTransaction records a transaction from the gastos form. Invalid
// submissions redirect back without recording, matching the form's
// client-side behavior of ignoring unusable input.
func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)

	amount, err := strconv.ParseFloat(r.PostFormValue("amount"), 64)
	if err != nil || amount <= 0 {
		redirectTo(w, r, "/gastos", month)
		return
	}

	txType := model.TransactionType(r.PostFormValue("type"))
	if txType != model.TypeIncome && txType != model.TypeExpense {
		redirectTo(w, r, "/gastos", month)
		return
	}

	date := r.PostFormValue("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		redirectTo(w, r, "/gastos", month)
		return
	}

	category := r.PostFormValue("category")
	if category == "" {
		redirectTo(w, r, "/gastos", month)
		return
	}

	h.state.AddTransaction(model.Transaction{
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     date,
		Note:     r.PostFormValue("note"),
	})
	redirectTo(w, r, "/gastos", month)
}

// DeleteTransaction removes a ledger entry from the gastos list.
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	h.state.DeleteTransaction(r.PostFormValue("id"))
	redirectTo(w, r, "/gastos", formMonth(r))
}

// SeedDemo loads the demo transactions into the visible month.
func (h *Handler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)
	h.state.SeedDemo(month)
	redirectTo(w, r, "/dashboard", month)
}

// UpsertBudget sets a category limit for the visible month.
func (h *Handler) UpsertBudget(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)

	limit, err := strconv.ParseFloat(r.PostFormValue("limit"), 64)
	if err != nil || limit < 0 {
		redirectTo(w, r, "/presupuesto", month)
		return
	}
	category := r.PostFormValue("category")
	if category == "" {
		redirectTo(w, r, "/presupuesto", month)
		return
	}

	h.state.UpsertBudget(model.BudgetLimit{Month: month, Category: category, Limit: limit})
	redirectTo(w, r, "/presupuesto", month)
}

// DeleteBudget removes a category limit for the visible month.
func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)
	h.state.DeleteBudget(month, r.PostFormValue("category"))
	redirectTo(w, r, "/presupuesto", month)
}

// UpsertGoal sets the savings target for the visible month.
func (h *Handler) UpsertGoal(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)

	target, err := strconv.ParseFloat(r.PostFormValue("target"), 64)
	if err != nil || target < 0 {
		redirectTo(w, r, "/metas", month)
		return
	}

	h.state.UpsertGoal(model.Goal{Month: month, Type: model.GoalSavings, Target: target})
	redirectTo(w, r, "/metas", month)
}

// DeleteGoal removes the savings goal for the visible month.
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)
	h.state.DeleteGoal(month, model.GoalSavings)
	redirectTo(w, r, "/metas", month)
}

// RequestClear starts the destructive clear flow: it issues a fresh
// confirmation token and renders the confirmation page carrying it.
func (h *Handler) RequestClear(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)

	token, err := h.state.RequestClearAll(h.guard)
	if err != nil {
		log.Printf("web: failed to issue clear token: %v", err)
		redirectTo(w, r, "/dashboard", month)
		return
	}

	data := h.pageData(r, "/dashboard")
	data.Month = month
	data.Title = model.MonthTitle(month)
	data.ClearToken = token
	h.render(w, "clear.html", data)
}

// ConfirmClear completes the clear flow when the echoed token verifies.
func (h *Handler) ConfirmClear(w http.ResponseWriter, r *http.Request) {
	month := formMonth(r)

	if err := h.state.ConfirmClearAll(h.guard, r.PostFormValue("token")); err != nil {
		log.Printf("web: rejected clear confirmation: %v", err)
	}
	redirectTo(w, r, "/dashboard", month)
}
