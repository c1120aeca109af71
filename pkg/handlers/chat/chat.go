// Package chat serves listing conversations. Every message passes through
// the contact-redaction filter before it is stored; the raw text is kept for
// moderation review but never returned on the counterparty path.
package chat

import (
	"encoding/json"
	"net/http"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/respond"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/mapping"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/redaction"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ChatHandler holds the dependencies for chat-related handlers.
type ChatHandler struct {
	Store storage.MessageStore
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(store storage.MessageStore) *ChatHandler {
	return &ChatHandler{Store: store}
}

// SendMessage filters and stores a message in a listing conversation. The
// response reflects what the counterparty will see.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req api.NewMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}
	if req.Message == "" {
		http.Error(w, "Message must not be empty", http.StatusBadRequest)
		return
	}

	result := redaction.Filter(req.Message)

	created, err := h.Store.CreateMessage(r.Context(), &models.ChatMessage{
		ListingID:       chi.URLParam(r, "listingId"),
		SenderID:        req.SenderId.String(),
		SenderRole:      req.SenderRole,
		Message:         result.FilteredText,
		OriginalMessage: req.Message,
		WasFiltered:     result.WasFiltered,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiMessage(created))
}

// ListConversation returns a listing's conversation, filtered text only.
func (h *ChatHandler) ListConversation(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Store.ListMessages(r.Context(), chi.URLParam(r, "listingId"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Message, len(messages))
	for i := range messages {
		out[i] = mapping.ToApiMessage(&messages[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// ListConversationPrivileged returns a conversation including raw text, for
// moderation review. The route sits behind moderator verification.
func (h *ChatHandler) ListConversationPrivileged(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Store.ListMessagesPrivileged(r.Context(), chi.URLParam(r, "listingId"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.ModerationMessage, len(messages))
	for i := range messages {
		out[i] = mapping.ToApiModerationMessage(&messages[i])
	}
	respond.JSON(w, http.StatusOK, out)
}
