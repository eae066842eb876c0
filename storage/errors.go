package storage

import "github.com/jumptake/backend/apperror"

func notFound(what string) error {
	return apperror.Newf(apperror.NotFound, "%s not found", what)
}

func errEmailTaken() error {
	return apperror.New(apperror.Duplicate, "user with this email already exists").WithCode("email_taken")
}

func errAlreadyApplied() error {
	return apperror.New(apperror.Duplicate, "You have already applied for this job").WithCode("already_applied")
}
