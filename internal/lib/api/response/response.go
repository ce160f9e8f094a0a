package response

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
)

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// ValidationError builds a VALIDATION_ERROR body listing every failed field.
func ValidationError(code string, errs validator.ValidationErrors) ErrorResponse {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "maxbytes":
			msgs = append(msgs, fmt.Sprintf("field '%s' must be no more than %s bytes", err.Field(), err.Param()))
		case "minbytes":
			msgs = append(msgs, fmt.Sprintf("field '%s' must be at least %s bytes", err.Field(), err.Param()))
		case "unique":
			msgs = append(msgs, fmt.Sprintf("field '%s' contains duplicate entries", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return NewErrorResponse(code, strings.Join(msgs, ", "))
}

type PullRequest struct {
	ID                string     `json:"pull_request_id"`
	Name              string     `json:"pull_request_name"`
	AuthorID          string     `json:"author_id"`
	Status            string     `json:"status"`
	AssignedReviewers []string   `json:"assigned_reviewers"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	MergedAt          *time.Time `json:"merged_at,omitempty"`
}

type PullRequestShort struct {
	ID       string `json:"pull_request_id"`
	Name     string `json:"pull_request_name"`
	AuthorID string `json:"author_id"`
	Status   string `json:"status"`
}

func NewPullRequest(pr *domains.PullRequest) PullRequest {
	out := PullRequest{
		ID:                pr.ID,
		Name:              pr.Name,
		AuthorID:          pr.AuthorID,
		Status:            string(pr.Status),
		AssignedReviewers: make([]string, 0, len(pr.Reviewers)),
		MergedAt:          pr.MergedAt,
	}
	out.AssignedReviewers = append(out.AssignedReviewers, pr.Reviewers...)
	if !pr.CreatedAt.IsZero() {
		createdAt := pr.CreatedAt
		out.CreatedAt = &createdAt
	}

	return out
}

func NewPullRequestShort(pr *domains.PullRequest) PullRequestShort {
	return PullRequestShort{
		ID:       pr.ID,
		Name:     pr.Name,
		AuthorID: pr.AuthorID,
		Status:   string(pr.Status),
	}
}
