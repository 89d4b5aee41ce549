package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prathamesh424/pixelwalk-go/internal/api/middleware"
	"github.com/prathamesh424/pixelwalk-go/internal/api/request"
	"github.com/prathamesh424/pixelwalk-go/internal/api/response"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/services/chat"
)

// ChatHandler handles direct-message endpoints
type ChatHandler struct {
	chatService *chat.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send handles POST /api/v1/chat/messages
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Receiver == "" {
		WriteError(w, NewInvalidRequestError("receiver is required"))
		return
	}

	msg, err := h.chatService.Send(r.Context(), identity, model.Identity(req.Receiver), req.Body)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MessageFromModel(*msg))
}

// History handles GET /api/v1/chat/threads/{identity}. The path
// identity is the other participant; the requester comes from the
// session, so either side of a pair sees the same thread.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	other := model.Identity(mux.Vars(r)["identity"])

	messages, err := h.chatService.GetThread(r.Context(), identity, other)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Message, len(messages))
	for i, m := range messages {
		out[i] = response.MessageFromModel(m)
	}
	response.JSON(w, http.StatusOK, response.ThreadHistoryResponse{Messages: out})
}

// ListThreads handles GET /api/v1/chat/threads
func (h *ChatHandler) ListThreads(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	threads, err := h.chatService.ListThreadsFor(r.Context(), identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Thread, len(threads))
	for i, t := range threads {
		out[i] = response.ThreadFromModel(t, false)
	}
	response.JSON(w, http.StatusOK, response.ThreadListResponse{Threads: out})
}
