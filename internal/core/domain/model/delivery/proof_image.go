package delivery

import (
	"time"

	"pod/internal/pkg/errs"
)

// ProofImage is an immutable proof-of-delivery capture.
type ProofImage struct {
	url       string
	timestamp time.Time
	size      int
}

// NewProofImage builds a proof image. url is an opaque reference: an object
// storage URL or the inline payload itself.
func NewProofImage(url string, timestamp time.Time, size int) (ProofImage, error) {
	if url == "" {
		return ProofImage{}, errs.NewValueIsRequiredError("proof url")
	}
	if timestamp.IsZero() {
		return ProofImage{}, errs.NewValueIsRequiredError("proof timestamp")
	}
	if size < 0 {
		return ProofImage{}, errs.NewValueIsOutOfRangeError("proof size", size, 0, "unbounded")
	}
	return ProofImage{url: url, timestamp: timestamp, size: size}, nil
}

func (p ProofImage) URL() string          { return p.url }
func (p ProofImage) Timestamp() time.Time { return p.timestamp }
func (p ProofImage) Size() int            { return p.size }
