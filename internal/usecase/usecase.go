package usecase

import (
	"context"
	"errors"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrTeamAlreadyExists   = errors.New("team already exists")
	ErrTeamNotFound        = errors.New("team not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPRAlreadyExists     = errors.New("pull request already exists")
	ErrPullRequestNotFound = errors.New("pull request not found")
	ErrPRAlreadyMerged     = errors.New("pull request already merged")
	ErrUserNotAssigned     = errors.New("reviewer is not assigned to this pull request")
	ErrNoAvailableReviewer = errors.New("no active replacement candidate in team")
)

// TxManager runs fn atomically. Repository calls made with the ctx passed to fn join the transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
