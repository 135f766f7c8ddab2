// Package assistant relays chat messages to the external travel-assistant
// workflow. It is a single-request proxy with a bounded deadline; no
// conversation state lives here.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"yatra/globals"
	"yatra/utils"
)

// The workflow endpoint may take a long time to answer; abort after this.
const relayTimeout = 55 * time.Second

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatReply struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Relay forwards chat messages to one workflow endpoint.
type Relay struct {
	endpoint string
	hc       *http.Client
}

func NewRelay() *Relay {
	return &Relay{
		endpoint: globals.Getenv("ASSISTANT_WEBHOOK_URL", ""),
		hc:       &http.Client{Timeout: relayTimeout},
	}
}

// Send forwards one message and normalises the workflow's answer.
func (rl *Relay) Send(ctx context.Context, sessionID, message string) (chatReply, error) {
	ctx, cancel := context.WithTimeout(ctx, relayTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"action":    "sendMessage",
		"sessionId": sessionID,
		"chatInput": message,
	})
	if err != nil {
		return chatReply{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rl.endpoint, bytes.NewReader(payload))
	if err != nil {
		return chatReply{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := rl.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return chatReply{}, errors.New("the assistant is taking longer than expected to respond")
		}
		return chatReply{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return chatReply{}, fmt.Errorf("assistant workflow returned status %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return chatReply{}, fmt.Errorf("assistant workflow returned a malformed response: %w", err)
	}

	content := firstString(body, "output", "response", "message")
	if content == "" {
		raw, _ := json.Marshal(body)
		content = string(raw)
	}
	return chatReply{Role: "assistant", Content: content}, nil
}

func firstString(body map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Chat handles POST /api/assistant/chat.
func (rl *Relay) Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid chat message")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("session-%d", time.Now().UnixMilli())
	}

	reply, err := rl.Send(r.Context(), sessionID, req.Message)
	if err != nil {
		log.Printf("assistant relay error: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"error":   "Failed to process chat message",
			"details": err.Error(),
		})
		return
	}

	w.Header().Set("x-session-id", sessionID)
	utils.RespondWithJSON(w, http.StatusOK, reply)
}
