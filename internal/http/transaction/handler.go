package transaction

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"budget/internal/auth"
	"budget/internal/forms"
	"budget/internal/http/render"
	"budget/internal/transaction"
)

type Handler struct {
	svc      *transaction.Service
	renderer *render.Renderer
}

func NewHandler(svc *transaction.Service, renderer *render.Renderer) *Handler {
	return &Handler{svc: svc, renderer: renderer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/all", h.list)
	r.Get("/add", h.addForm)
	r.Post("/add", h.add)
	r.Get("/{id}/", h.detail)
	r.Get("/{id}/remove", h.remove)
	r.Get("/{id}/change", h.editForm)
	r.Post("/{id}/change", h.edit)
}

type listPage struct {
	render.Page
	Transactions []*transaction.Transaction
	ByType       map[transaction.Type]decimal.Decimal
	ByCategory   map[transaction.Category]decimal.Decimal
	Month        time.Month
	Year         int
}

// referencePeriod resolves the month/year the breakdowns cover: the
// current calendar month unless overridden by query parameters.
func referencePeriod(r *http.Request) (int, time.Month) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if s := r.URL.Query().Get("year"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			year = v
		}
	}

	if s := r.URL.Query().Get("month"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 && v <= 12 {
			month = time.Month(v)
		}
	}

	return year, month
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	year, month := referencePeriod(r)

	res, err := h.svc.List(r.Context(), claims.UserID, year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "transaction_list.html", listPage{
		Page:         render.NewPage(w, r, "Transactions"),
		Transactions: res.Transactions,
		ByType:       res.Summary.ByType,
		ByCategory:   res.Summary.ByCategory,
		Month:        month,
		Year:         year,
	})
}

type formPage struct {
	render.Page
	Heading    string
	Action     string
	Form       forms.Transaction
	Errors     forms.FieldErrors
	Types      []transaction.Type
	Categories []transaction.Category
}

func newFormPage(w http.ResponseWriter, r *http.Request, heading, action string, form forms.Transaction, errs forms.FieldErrors) formPage {
	return formPage{
		Page:       render.NewPage(w, r, heading),
		Heading:    heading,
		Action:     action,
		Form:       form,
		Errors:     errs,
		Types:      transaction.Types(),
		Categories: transaction.Categories(),
	}
}

func (h *Handler) addForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusOK, "transaction_form.html",
		newFormPage(w, r, "Add transaction", "/transactions/add", forms.Transaction{}, nil))
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, errs := forms.ParseTransaction(r.PostForm)
	if errs != nil {
		h.renderer.HTML(w, http.StatusUnprocessableEntity, "transaction_form.html",
			newFormPage(w, r, "Add transaction", "/transactions/add", form, errs))

		return
	}

	_, err := h.svc.Create(r.Context(), claims.UserID, transaction.CreateParams{
		Title:    form.Title,
		Amount:   form.AmountValue(),
		Type:     transaction.Type(form.Type),
		Category: transaction.Category(form.Category),
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	render.SetFlash(w, render.FlashSuccess, "transaction has been added successfully")
	http.Redirect(w, r, "/transactions/all", http.StatusSeeOther)
}

type detailPage struct {
	render.Page
	Transaction *transaction.Transaction
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	tx, err := h.svc.Get(r.Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			h.notFound(w, r)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.renderer.HTML(w, http.StatusOK, "transaction_detail.html", detailPage{
		Page:        render.NewPage(w, r, tx.Title),
		Transaction: tx,
	})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err := h.svc.Delete(r.Context(), claims.UserID, id); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			h.notFound(w, r)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	render.SetFlash(w, render.FlashSuccess, "transaction has been removed")
	http.Redirect(w, r, "/transactions/all", http.StatusSeeOther)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	tx, err := h.svc.Get(r.Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			h.notFound(w, r)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	form := forms.Transaction{
		Title:    tx.Title,
		Amount:   tx.Amount.String(),
		Type:     string(tx.Type),
		Category: string(tx.Category),
	}

	h.renderer.HTML(w, http.StatusOK, "transaction_form.html",
		newFormPage(w, r, "Edit transaction", "/transactions/"+id.String()+"/change", form, nil))
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, errs := forms.ParseTransaction(r.PostForm)
	if errs != nil {
		h.renderer.HTML(w, http.StatusUnprocessableEntity, "transaction_form.html",
			newFormPage(w, r, "Edit transaction", "/transactions/"+id.String()+"/change", form, errs))

		return
	}

	_, err = h.svc.Update(r.Context(), claims.UserID, id, transaction.UpdateParams{
		Title:    form.Title,
		Amount:   form.AmountValue(),
		Type:     transaction.Type(form.Type),
		Category: transaction.Category(form.Category),
	})
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			h.notFound(w, r)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	render.SetFlash(w, render.FlashSuccess, "transaction has been updated successfully")
	http.Redirect(w, r, "/transactions/all", http.StatusSeeOther)
}

type notFoundPage struct {
	render.Page
	Message string
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusNotFound, "notfound.html", notFoundPage{
		Page:    render.NewPage(w, r, "Not found"),
		Message: "transaction not found",
	})
}
