package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-faster/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogapp "github.com/dwikikusuma/crypto-storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/crypto-storefront/internal/checkout/app"
	"github.com/dwikikusuma/crypto-storefront/internal/pricing"
)

var errInvalidProductID = errors.New("invalid product id")

// mapErr converts domain errors into status errors. Anything unrecognised,
// including a cart that references a product outside the catalog, is
// Internal.
func mapErr(err error) error {
	switch {
	case errors.Is(err, errInvalidProductID),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, pricing.ErrUnsupportedChain):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, catalogapp.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.FailedPrecondition:
		return http.StatusConflict, "FAILED_PRECONDITION", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return http.StatusServiceUnavailable, "UNAVAILABLE", st.Message()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, name, msg := httpStatusFromGRPC(mapErr(err))
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
	}
	writeJSON(w, code, errorBody{Error: errorDetail{Code: name, Message: msg}})
}
