package content

import (
	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to categorised errors.
const (
	CodePostNotFound          = "POST_NOT_FOUND"
	CodePostMalformed         = "POST_MALFORMED"
	CodeContentDirUnavailable = "CONTENT_DIR_UNAVAILABLE"
)

func notFound(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryNotFound, msg).
		WithTextCode(CodePostNotFound)
}

func malformed(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, msg).
		WithTextCode(CodePostMalformed)
}

func dirUnavailable(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, msg).
		WithTextCode(CodeContentDirUnavailable)
}

// IsNotFound reports whether err means the post file is missing or unreadable.
func IsNotFound(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryNotFound)
}

// IsMalformed reports whether err means the post file exists but its
// front-matter or body could not be turned into a post.
func IsMalformed(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryValidation)
}

// IsDirUnavailable reports whether err means the content directory could
// not be created or listed.
func IsDirUnavailable(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryInternal)
}
