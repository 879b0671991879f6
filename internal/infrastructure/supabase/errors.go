package supabase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// errorBody covers the message shapes GoTrue and PostgREST emit. GoTrue
// uses msg/error_description depending on endpoint and version, PostgREST
// always uses message.
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	ErrorField       string `json:"error"`
}

func backendError(op string, status int, raw []byte) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)

	msg := eb.Message
	if msg == "" {
		msg = eb.Msg
	}
	if msg == "" {
		msg = eb.ErrorDescription
	}
	if msg == "" {
		msg = eb.ErrorField
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = fmt.Sprintf("backend returned status %d", status)
	}

	if status == http.StatusUnauthorized {
		return fmt.Errorf("%s: %s: %w", op, msg, domain.ErrInvalidToken)
	}
	return domain.NewBackendError(op, msg)
}
