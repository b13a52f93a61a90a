package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qubicgame/qubic/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeOutOfRange     = "OUT_OF_RANGE"
	CodeCellOccupied   = "CELL_OCCUPIED"
	CodeCellEmpty      = "CELL_EMPTY"
	CodeGameDecided    = "GAME_DECIDED"
	CodeNoLegalMove    = "NO_LEGAL_MOVE"
	CodeGameNotFound   = "GAME_NOT_FOUND"
	CodeBadEncoding    = "BAD_ENCODING"
	CodeInvalidPlayer  = "INVALID_PLAYER"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// BadRequest creates a 400 error with the given message
func BadRequest(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeOutOfRange, "Cell index must be in [0,63]"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrCellEmpty):
		return &httpError{http.StatusConflict, APIError{CodeCellEmpty, "Cell is empty"}}
	case errors.Is(err, model.ErrGameDecided):
		return &httpError{http.StatusConflict, APIError{CodeGameDecided, "Game already has a winner"}}
	case errors.Is(err, model.ErrNoLegalMove):
		return &httpError{http.StatusConflict, APIError{CodeNoLegalMove, "No legal move: board is full"}}
	case errors.Is(err, model.ErrBadEncoding):
		return &httpError{http.StatusBadRequest, APIError{CodeBadEncoding, err.Error()}}
	case errors.Is(err, model.ErrInvalidPlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayer, "Player must be 'human' or 'machine'"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}
