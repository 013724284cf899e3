package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/auth"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			EntityID:  pathEntityID(r.URL.Path),
		}

		if header := r.Header.Get(auth.AuthHeader); header != "" {
			if claims, err := s.tokens.ParseAuthHeader(header); err == nil {
				entry.UserID = claims.UserID.String()
				entry.Role = string(claims.Role)
			}
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = redactBody(r.URL.Path, requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = redactBody(r.URL.Path, wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// pathEntityID pulls the first UUID path segment, if any. Good enough
// for correlating audit entries with the entity they touched.
func pathEntityID(path string) string {
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if id, err := uuid.Parse(path[start:i]); err == nil {
				return id.String()
			}
			start = i + 1
		}
	}
	return ""
}

// Credentials never go into the audit trail.
func redactBody(path string, body []byte) string {
	if path == "/auth/register" || path == "/auth/login" {
		return "[redacted]"
	}
	return string(body)
}
