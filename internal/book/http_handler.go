package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if messages := httpx.ValidateStruct(in); messages != nil {
		httpx.JSONError(w, http.StatusBadRequest, messages...)
		return
	}

	b := Book{Title: in.Title, Author: in.Author, ISBN: in.ISBN}
	if err := h.service.Save(r.Context(), &b); err != nil {
		if errors.Is(err, ErrDuplicateISBN) {
			httpx.JSONError(w, http.StatusBadRequest, ErrDuplicateISBN.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSONCreated(w, b)
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.NotFound(w)
		return
	}

	b, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !found {
		httpx.NotFound(w)
		return
	}

	httpx.JSON(w, b)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := Filter{
		Title:  query.Get("title"),
		Author: query.Get("author"),
		ISBN:   query.Get("isbn"),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 0 {
		page = 0
	}
	size, _ := strconv.Atoi(query.Get("size"))
	if size <= 0 || size > 100 {
		size = 20
	}

	result, err := h.service.Find(r.Context(), filter, PageRequest{Page: page, Size: size})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSON(w, result)
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.NotFound(w)
		return
	}

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if messages := httpx.ValidateStruct(in); messages != nil {
		httpx.JSONError(w, http.StatusBadRequest, messages...)
		return
	}

	b, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !found {
		httpx.NotFound(w)
		return
	}

	in.ApplyTo(&b)
	if err := h.service.Update(r.Context(), &b); err != nil {
		if errors.Is(err, ErrInvalidBook) {
			httpx.JSONError(w, http.StatusBadRequest, ErrInvalidBook.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSON(w, b)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.NotFound(w)
		return
	}

	b, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !found {
		httpx.NotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), &b); err != nil {
		if errors.Is(err, ErrInvalidBook) {
			httpx.JSONError(w, http.StatusBadRequest, ErrInvalidBook.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.NoContent(w)
}

// pathID extracts the {id} path value. IDs are opaque to clients, so
// anything non-numeric simply names no record.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
