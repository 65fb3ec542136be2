package errors

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/progressions/shot-client-next-sub002/internal/platform/errors/i18n"
)

// HandleError converts err to a gRPC status for clients, localizing domain
// errors for locale. Errors that are already statuses pass through; anything
// else becomes Internal.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		catalog := i18n.GetCatalog(locale)
		return appErr.ToGRPCStatus(catalog.Locale(), catalog.Format(string(appErr.Code), appErr.Metadata))
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, "an unexpected error occurred")
}

// GetCode returns err's domain code, or CodeUnknown.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// LocalizedMessage returns the user-facing message attached to a status
// error, falling back to the status message.
func LocalizedMessage(err error) string {
	if err == nil {
		return ""
	}
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok {
			return msg.GetMessage()
		}
	}
	return st.Message()
}
