package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prathamesh424/pixelwalk-go/internal/api/middleware"
	"github.com/prathamesh424/pixelwalk-go/internal/api/request"
	"github.com/prathamesh424/pixelwalk-go/internal/api/response"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/services/movement"
	"github.com/prathamesh424/pixelwalk-go/internal/services/player"
	"github.com/prathamesh424/pixelwalk-go/internal/services/proximity"
	"github.com/prathamesh424/pixelwalk-go/internal/services/world"
)

// PlayerHandler handles presence endpoints: entering the world,
// reading and updating the own record, moving, and nearby queries
type PlayerHandler struct {
	playerService    *player.Service
	worldService     *world.Service
	movementService  *movement.Service
	proximityService *proximity.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(
	playerService *player.Service,
	worldService *world.Service,
	movementService *movement.Service,
	proximityService *proximity.Service,
) *PlayerHandler {
	return &PlayerHandler{
		playerService:    playerService,
		worldService:     worldService,
		movementService:  movementService,
		proximityService: proximityService,
	}
}

// Enter handles POST /api/v1/players/enter. Idempotent per identity:
// an existing record is returned unchanged.
func (h *PlayerHandler) Enter(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	identity := middleware.MustGetIdentity(r.Context())

	var req request.EnterWorldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.AvatarURL == "" {
		WriteError(w, NewInvalidRequestError("avatar_url is required"))
		return
	}

	var mapID *model.MapID
	if req.MapName != "" {
		m, err := h.worldService.LocateByName(r.Context(), req.MapName)
		if err != nil {
			WriteError(w, err)
			return
		}
		mapID = &m.ID
	}

	p, err := h.playerService.CreateOrLocate(
		r.Context(),
		identity,
		model.Position{X: req.X, Y: req.Y},
		mapID,
		req.AvatarURL,
		session.Guest,
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// Me handles GET /api/v1/players/me
func (h *PlayerHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	p, err := h.playerService.LocateByIdentity(r.Context(), identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Update handles PATCH /api/v1/players/me
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	patch := model.PlayerPatch{AvatarURL: req.AvatarURL}
	if req.MapName != nil {
		m, err := h.worldService.LocateByName(r.Context(), *req.MapName)
		if err != nil {
			WriteError(w, err)
			return
		}
		patch.MapID = &m.ID
	}
	if req.X != nil || req.Y != nil {
		current, err := h.playerService.LocateByIdentity(r.Context(), identity)
		if err != nil {
			WriteError(w, err)
			return
		}
		pos := current.Position
		if req.X != nil {
			pos.X = *req.X
		}
		if req.Y != nil {
			pos.Y = *req.Y
		}
		patch.Position = &pos
	}

	p, err := h.playerService.Update(r.Context(), identity, patch)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Delete handles DELETE /api/v1/players/{id}. Administrative;
// idempotent on absent keys.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.playerService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ListOnMap handles GET /api/v1/maps/{name}/players
func (h *PlayerHandler) ListOnMap(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	m, err := h.worldService.LocateByName(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.playerService.ListOnMap(r.Context(), m.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Player, len(players))
	for i, p := range players {
		out[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// Move handles POST /api/v1/players/me/move
func (h *PlayerHandler) Move(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos, err := h.movementService.Move(r.Context(), identity, req.Direction)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponse{Position: response.PositionFromModel(pos)})
}

// Nearby handles GET /api/v1/maps/{name}/nearby
func (h *PlayerHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	name := mux.Vars(r)["name"]

	players, err := h.proximityService.Nearby(r.Context(), name, identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NearbyResponseFromModel(players))
}
