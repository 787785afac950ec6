package dto

import (
	"net/http"
	"time"
)

// CustomResponse is the envelope every endpoint answers with.
type CustomResponse[T any] struct {
	Time       time.Time `json:"time"`
	HTTPStatus int       `json:"httpStatus"`
	IsSuccess  bool      `json:"isSuccess"`
	Response   T         `json:"response,omitempty"`
}

// CustomPagingRequest carries 1-based paging parameters.
type CustomPagingRequest struct {
	PageNumber int `json:"pageNumber" binding:"required,min=1"`
	PageSize   int `json:"pageSize" binding:"required,min=1"`
}

// Offset converts the 1-based page number to a row offset.
func (r CustomPagingRequest) Offset() int {
	return (r.PageNumber - 1) * r.PageSize
}

// CustomPagingResponse mirrors CustomPage on the wire.
type CustomPagingResponse[T any] struct {
	Content           []T   `json:"content"`
	PageNumber        int   `json:"pageNumber"`
	PageSize          int   `json:"pageSize"`
	TotalElementCount int64 `json:"totalElementCount"`
	TotalPageCount    int   `json:"totalPageCount"`
}

// CustomErrorResponse is the envelope for failed requests.
type CustomErrorResponse struct {
	Time       time.Time `json:"time"`
	HTTPStatus int       `json:"httpStatus"`
	IsSuccess  bool      `json:"isSuccess"`
	Message    string    `json:"message"`
}

func SuccessOf[T any](response T) CustomResponse[T] {
	return CustomResponse[T]{
		Time:       time.Now(),
		HTTPStatus: http.StatusOK,
		IsSuccess:  true,
		Response:   response,
	}
}

func Success() CustomResponse[struct{}] {
	return CustomResponse[struct{}]{
		Time:       time.Now(),
		HTTPStatus: http.StatusOK,
		IsSuccess:  true,
	}
}

func ErrorOf(status int, message string) CustomErrorResponse {
	return CustomErrorResponse{
		Time:       time.Now(),
		HTTPStatus: status,
		IsSuccess:  false,
		Message:    message,
	}
}
