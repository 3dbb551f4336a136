package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kwagala/shared/constant"
	"kwagala/shared/failure"
	"kwagala/shared/logger"
)

type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithSuccess sends {success:true, message}
func WithSuccess(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Status{Success: true, Message: message})
}

// WithJSON sends payload as the whole body
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends {success:false, message}. Unexpected errors are logged and answered
// with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := err.Error()

	if !failure.IsExpected(err) {
		logger.ErrorWithStack(err)

		message = constant.ResponseErrorInternal
	}

	response(writer, code, Status{Success: false, Message: message})
}

// WithFile sends raw as a download named filename
func WithFile(writer http.ResponseWriter, contentType, filename string, raw []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(raw); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Status{Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(response); err != nil {
		logger.ErrorWithStack(err)
	}
}
