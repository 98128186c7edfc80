package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// maxJSONBodyBytes bounds JSON request bodies.
const maxJSONBodyBytes = 1 << 20

// asOfLayout is the date format accepted by the as_of query parameter.
const asOfLayout = "2006-01-02"

// decodeJSON decodes the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Message: "invalid request body: " + err.Error()}
	}
	return nil
}

// validationError converts validator output into an ErrValidation naming the first failing field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag())}
	}
	return &ErrValidation{Message: err.Error()}
}

// parseQueryBool parses a boolean query parameter, returning defaultValue when absent.
func parseQueryBool(r *http.Request, key string, defaultValue bool) (bool, error) {
	valStr := strings.TrimSpace(r.URL.Query().Get(key))
	if valStr == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, &ErrValidation{Field: key, Message: "must be true or false"}
	}
	return val, nil
}

// parseAsOf reads the as_of query parameter, defaulting to the server clock.
func (s *Server) parseAsOf(r *http.Request) (time.Time, error) {
	valStr := strings.TrimSpace(r.URL.Query().Get("as_of"))
	if valStr == "" {
		return s.now(), nil
	}
	asOf, err := time.Parse(asOfLayout, valStr)
	if err != nil {
		return time.Time{}, &ErrValidation{Field: "as_of", Message: "must be a YYYY-MM-DD date"}
	}
	return asOf, nil
}
