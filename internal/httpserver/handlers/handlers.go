package handlers

const (
	BadRequest      = "BAD_REQUEST"
	ValidationError = "VALIDATION_ERROR"
	Unauthorized    = "UNAUTHORIZED"
	NotFound        = "NOT_FOUND"
	InternalError   = "INTERNAL_ERROR"
	TeamExists      = "TEAM_EXISTS"
	PrExists        = "PR_EXISTS"
	PrMerged        = "PR_MERGED"
	NotAssigned     = "NOT_ASSIGNED"
	NoCandidate     = "NO_CANDIDATE"
)
