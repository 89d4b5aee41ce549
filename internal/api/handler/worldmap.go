package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prathamesh424/pixelwalk-go/internal/api/request"
	"github.com/prathamesh424/pixelwalk-go/internal/api/response"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/services/world"
)

// MapHandler handles map registry endpoints
type MapHandler struct {
	worldService *world.Service
}

// NewMapHandler creates a new map handler
func NewMapHandler(worldService *world.Service) *MapHandler {
	return &MapHandler{
		worldService: worldService,
	}
}

// Create handles POST /api/v1/maps
func (h *MapHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	m, err := h.worldService.Create(r.Context(), req.Name, req.Width, req.Height)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MapFromModel(m))
}

// Get handles GET /api/v1/maps/{name}
func (h *MapHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	m, err := h.worldService.LocateByName(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MapFromModel(m))
}

// List handles GET /api/v1/maps
func (h *MapHandler) List(w http.ResponseWriter, r *http.Request) {
	maps, err := h.worldService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Map, len(maps))
	for i, m := range maps {
		out[i] = response.MapFromModel(m)
	}
	response.JSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/v1/maps/{id}
func (h *MapHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.MapID(mux.Vars(r)["id"])

	var req request.UpdateMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.worldService.Update(r.Context(), id, model.MapPatch{
		Name:   req.Name,
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MapFromModel(m))
}

// Delete handles DELETE /api/v1/maps/{id}
func (h *MapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.MapID(mux.Vars(r)["id"])

	if err := h.worldService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
