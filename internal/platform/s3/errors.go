package s3

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Codes S3-compatible services use for a missing bucket or key when the
// response does not map onto a typed error.
var notFoundCodes = map[string]bool{
	"NotFound":     true,
	"NoSuchKey":    true,
	"NoSuchBucket": true,
	"404":          true,
}

// IsNotFound reports whether err indicates a missing bucket or object.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var (
		noKey    *types.NoSuchKey
		noBucket *types.NoSuchBucket
		notFound *types.NotFound
	)
	if errors.As(err, &noKey) || errors.As(err, &noBucket) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && notFoundCodes[apiErr.ErrorCode()]
}
