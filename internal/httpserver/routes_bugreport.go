// internal/httpserver/routes_bugreport.go
//
// POST /api/send-bug-report: hand a free-text description to the mail
// collaborator, addressed to the maintainer inbox, with the current date in
// the subject. Validation failures (empty description) and mail failures
// are distinct errors; neither is retried.

package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type bugReportReq struct {
	Description string `json:"description"`
}

func (s *Server) handleBugReport(w http.ResponseWriter, r *http.Request) {
	var req bugReportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		http.Error(w, `{"error":"No description provided"}`, http.StatusBadRequest)
		return
	}

	subject := fmt.Sprintf("feetdle bug entry - %s", s.now().In(s.cfg.Location).Format("2006-01-02"))
	if err := s.mail.Send(r.Context(), subject, desc); err != nil {
		log.Error().Err(err).Msg("send bug report")
		http.Error(w, `{"error":"Failed to send email"}`, http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Bug report sent successfully"})
}
