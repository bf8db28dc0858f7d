package content

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeNotFound             = "POST_NOT_FOUND"
	codeMalformedFrontMatter = "FRONTMATTER_MALFORMED"
	codeFileSystem           = "CONTENT_FS_ERROR"
)

func notFoundError(err error, slug string) error {
	return goerrors.Wrap(err, goerrors.CategoryNotFound, fmt.Sprintf("post not found: %s", slug)).
		WithTextCode(codeNotFound)
}

func malformedFrontMatterError(err error, path string) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("malformed front-matter in %s", path)).
		WithTextCode(codeMalformedFrontMatter)
}

func fileSystemError(err error, op, path string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("%s %s", op, path)).
		WithTextCode(codeFileSystem)
}

// IsNotFound reports whether err means no content file matched a slug.
func IsNotFound(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryNotFound)
}

// IsMalformedFrontMatter reports whether err came from a front-matter block
// that could not be decoded.
func IsMalformedFrontMatter(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}

// IsFileSystemError reports whether err came from reading or listing the
// content store.
func IsFileSystemError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryInternal)
}
