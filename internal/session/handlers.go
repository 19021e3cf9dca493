package session

import (
	"encoding/json"
	"net/http"
)

type OpenResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// OpenHandler issues a token for a fresh session: POST /session
func OpenHandler(reg *Registry, secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := reg.Open()

		token, err := GenerateToken(secret, sid)
		if err != nil {
			http.Error(w, "failed to issue session token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(OpenResponse{SessionID: sid, Token: token})
	}
}
