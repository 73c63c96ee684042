package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/maya-clifford/final-case/pkg/domain"
)

// maxRequestBodyBytes caps the size of a create request body.
const maxRequestBodyBytes = 1 << 20

// maxSafeInteger bounds whole numbers accepted from float input.
const maxSafeInteger = 1 << 53

// Number holds a JSON number or numeric string as text until it is coerced.
type Number string

// UnmarshalJSON accepts any JSON value; coercion errors are reported later
// with the field name attached.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(strings.TrimSpace(s))
		return nil
	}
	*n = Number(bytes.TrimSpace(data))
	return nil
}

// Int coerces the number to an int. Fractional values are rejected.
func (n Number) Int(field string) (int, error) {
	text := string(n)
	if i, err := strconv.Atoi(text); err == nil {
		return i, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.NewValidationError(field, "must be an integer, got %s", text)
	}
	if f != math.Trunc(f) {
		return 0, domain.NewValidationError(field, "must be a whole number, got %s", text)
	}
	if math.Abs(f) > maxSafeInteger {
		return 0, domain.NewValidationError(field, "is out of range: %s", text)
	}
	return int(f), nil
}

// Float coerces the number to a finite float64.
func (n Number) Float(field string) (float64, error) {
	text := string(n)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.NewValidationError(field, "must be a number, got %s", text)
	}
	return f, nil
}

// CreateWorkoutRequest is the payload for POST /workouts.
type CreateWorkoutRequest struct {
	Exercise *string `json:"exercise" validate:"required"`
	Sets     *Number `json:"sets" validate:"required"`
	Reps     *Number `json:"reps" validate:"required"`
	Weight   *Number `json:"weight" validate:"required"`
	Date     *string `json:"date"`
	Notes    *string `json:"notes"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeCreateRequest parses and validates the request body.
// Every failure is a *domain.ValidationError.
func (h *Handler) decodeCreateRequest(body io.Reader) (*CreateWorkoutRequest, error) {
	var req CreateWorkoutRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return nil, decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, decodeError(err)
		}
		return nil, &domain.ValidationError{Message: "request body must contain a single JSON object"}
	}

	if err := h.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		missing := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			missing = append(missing, fe.Field())
		}
		return nil, domain.NewValidationError(strings.Join(missing, ", "), "missing required field")
	}

	if strings.TrimSpace(*req.Exercise) == "" {
		return nil, domain.NewValidationError("exercise", "must not be blank")
	}

	return &req, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return &domain.ValidationError{Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)}
	case errors.Is(err, io.EOF):
		return &domain.ValidationError{Message: "request body is empty"}
	case errors.As(err, &typeErr):
		return domain.NewValidationError(typeErr.Field, "must be a %s", typeErr.Type.Kind())
	case errors.As(err, &syntaxErr):
		return &domain.ValidationError{Message: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)}
	default:
		return &domain.ValidationError{Message: fmt.Sprintf("invalid request body: %v", err)}
	}
}

// ToWorkout coerces the request into a new workout stamped at now.
func (req *CreateWorkoutRequest) ToWorkout(now time.Time) (domain.Workout, error) {
	sets, err := req.Sets.Int("sets")
	if err != nil {
		return domain.Workout{}, err
	}
	reps, err := req.Reps.Int("reps")
	if err != nil {
		return domain.Workout{}, err
	}
	weight, err := req.Weight.Float("weight")
	if err != nil {
		return domain.Workout{}, err
	}

	createdAt := now.UTC().Format(domain.TimestampLayout)
	workout := domain.Workout{
		Exercise:  strings.TrimSpace(*req.Exercise),
		Sets:      sets,
		Reps:      reps,
		Weight:    weight,
		Date:      createdAt,
		CreatedAt: createdAt,
	}
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		workout.Date = *req.Date
	}
	if req.Notes != nil {
		workout.Notes = *req.Notes
	}

	return workout, nil
}
