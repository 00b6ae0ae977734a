// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/middleware"
	"github.com/danielhkuo/todolists/models"
	"github.com/danielhkuo/todolists/reconcile"
	"github.com/danielhkuo/todolists/session"
	"github.com/danielhkuo/todolists/store"
	"github.com/danielhkuo/todolists/views"
)

type TodoHandler struct {
	store *store.Store
	flash *session.Flasher
	views *views.Renderer
}

func NewTodoHandler(db *gorm.DB, cfg cliparse.Config) *TodoHandler {
	return &TodoHandler{
		store: store.New(db),
		flash: session.NewFlasher(cfg.SessionSecret),
		views: views.Must(),
	}
}

// page pops the pending flash messages; call it before anything is written
func (h *TodoHandler) page(w http.ResponseWriter, r *http.Request) models.Page {
	return models.Page{Flashes: h.flash.Flashes(w, r)}
}

func (h *TodoHandler) redirectToAll(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/all_lists", http.StatusSeeOther)
}

func (h *TodoHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "request_id", middleware.RequestID(r.Context()))
	h.views.Render(w, http.StatusInternalServerError, views.Error, models.ErrorPage{
		Page:    h.page(w, r),
		Message: "The request could not be completed. Please try again.",
	})
}

func (h *TodoHandler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.views.Render(w, http.StatusNotFound, views.NotFound, models.NotFoundPage{
		Page:    h.page(w, r),
		Message: msg,
	})
}

// CreateList handles GET and POST /
func (h *TodoHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.views.Render(w, http.StatusOK, views.Index, models.IndexPage{Page: h.page(w, r)})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	form, errs := decodeCreateListForm(r)
	if len(errs) > 0 {
		h.views.Render(w, http.StatusBadRequest, views.Index, models.IndexPage{
			Page:   h.page(w, r),
			Form:   form,
			Errors: errs,
		})
		return
	}

	list, err := reconcile.List(r.Context(), h.store, form.Name, reconcile.SplitLines(form.Items))
	if errors.Is(err, reconcile.ErrInvalidPriority) || errors.Is(err, reconcile.ErrTooLong) {
		h.views.Render(w, http.StatusBadRequest, views.Index, models.IndexPage{
			Page:   h.page(w, r),
			Form:   form,
			Errors: models.FormErrors{"items": err.Error()},
		})
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to reconcile list", err)
		return
	}

	slog.Info("list saved", "list_id", list.ID, "title", list.Title, "items", len(list.Items))
	h.redirectToAll(w, r)
}

// AllLists handles GET and POST /all_lists
func (h *TodoHandler) AllLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.store.AllLists(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to query lists", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.AllLists, models.AllListsPage{
		Page:  h.page(w, r),
		Lists: lists,
	})
}

// OneList handles GET and POST /list/{id}
func (h *TodoHandler) OneList(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		h.notFound(w, r, fmt.Sprintf("No list with id %s.", rawID))
		return
	}

	list, err := h.store.FindListByID(r.Context(), uint(id))
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r, fmt.Sprintf("No list with id %d.", id))
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to query list", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.List, models.ListPage{
		Page: h.page(w, r),
		List: *list,
	})
}

// UpdateItem handles GET and POST /update/{item}
func (h *TodoHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	description := r.PathValue("item")

	item, err := h.store.FindItemByDescription(r.Context(), description)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.serverError(w, r, "failed to query item", err)
		return
	}

	data := models.UpdateItemPage{Description: description, Item: item}

	if r.Method != http.MethodPost {
		data.Page = h.page(w, r)
		h.views.Render(w, http.StatusOK, views.UpdateItem, data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	form, errs := decodeUpdatePriorityForm(r)
	data.Form = form
	if len(errs) > 0 {
		data.Page = h.page(w, r)
		data.Errors = errs
		h.views.Render(w, http.StatusBadRequest, views.UpdateItem, data)
		return
	}

	// Unknown item: show the form again, nothing is written
	if item == nil {
		data.Page = h.page(w, r)
		h.views.Render(w, http.StatusNotFound, views.UpdateItem, data)
		return
	}

	if err := h.store.UpdateItemPriority(r.Context(), item, form.NewPriority); err != nil {
		h.serverError(w, r, "failed to update item priority", err)
		return
	}

	slog.Info("item priority updated", "item_id", item.ID, "priority", item.Priority)
	h.flash.AddFlash(w, r, "Updated priority of "+description)
	h.redirectToAll(w, r)
}

// DeleteList handles GET and POST /delete/{list_title}
func (h *TodoHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("list_title")

	list, err := h.store.FindListByTitle(r.Context(), title)
	if errors.Is(err, store.ErrNotFound) {
		h.redirectToAll(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to query list", err)
		return
	}

	if err := h.store.DeleteList(r.Context(), list); err != nil {
		h.serverError(w, r, "failed to delete list", err)
		return
	}

	slog.Info("list deleted", "list_id", list.ID, "title", title)
	h.flash.AddFlash(w, r, "Successfully deleted "+title)
	h.redirectToAll(w, r)
}

// DeleteItem handles GET and POST /delete_item/{item_description}.
// The flash is shown whether or not the item existed.
func (h *TodoHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	description := r.PathValue("item_description")

	item, err := h.store.FindItemByDescription(r.Context(), description)
	switch {
	case err == nil:
		if err := h.store.DeleteItem(r.Context(), item); err != nil {
			h.serverError(w, r, "failed to delete item", err)
			return
		}
		slog.Info("item deleted", "item_id", item.ID)
	case !errors.Is(err, store.ErrNotFound):
		h.serverError(w, r, "failed to query item", err)
		return
	}

	h.flash.AddFlash(w, r, "Deleted "+description)
	h.redirectToAll(w, r)
}
