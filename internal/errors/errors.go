package gerr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrLanguageNotAllowed is returned when a post or comment language is
	// not part of the target community's allowed set.
	ErrLanguageNotAllowed = status.Error(codes.InvalidArgument, "language not allowed")

	ErrSiteNotFound      = status.Error(codes.NotFound, "site not found")
	ErrCommunityNotFound = status.Error(codes.NotFound, "community not found")
	ErrLocalUserNotFound = status.Error(codes.NotFound, "local user not found")
)
