package commands

import (
	"errors"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var ErrAttachProofCommandIsNotConstructed = errors.New(
	"AttachProofCommand must be created via NewAttachProofCommand constructor",
)

// AttachProofCommand carries a proof-of-delivery payload, typically a base64
// data URL of a photo, from the delivery's messenger.
type AttachProofCommand struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID
	imageData   string

	guard guard.ConstructorGuard
}

func NewAttachProofCommand(deliveryID, requesterID kernel.UUID, imageData string) (AttachProofCommand, error) {
	err := errors.Join(deliveryID.Validate(), requesterID.Validate())
	if imageData == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("imageData"))
	}
	if err != nil {
		return AttachProofCommand{}, err
	}

	return AttachProofCommand{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		imageData:   imageData,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AttachProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofCommandIsNotConstructed)
}

func (c AttachProofCommand) DeliveryID() kernel.UUID  { return c.deliveryID }
func (c AttachProofCommand) RequesterID() kernel.UUID { return c.requesterID }
func (c AttachProofCommand) ImageData() string        { return c.imageData }
