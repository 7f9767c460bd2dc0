package delivery_test

import (
	"testing"
	"time"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)

func newBill(t *testing.T) *bill.Bill {
	t.Helper()
	b, err := bill.NewBill(kernel.NewUUID(), bill.Details{
		AccountNumber: "ACC-77",
		CustomerName:  "Jose Reyes",
		Address:       "4 Mabini Ave",
		Route:         "R-2",
	}, now.Add(-time.Hour))
	require.NoError(t, err)
	return b
}

func newDelivery(t *testing.T, messenger kernel.UUID) *delivery.Delivery {
	t.Helper()
	coordinator := kernel.NewUUID()
	d, err := delivery.NewDelivery(kernel.NewUUID(), newBill(t), messenger, &coordinator, now)
	require.NoError(t, err)
	return d
}

func proof(t *testing.T, at time.Time) delivery.ProofImage {
	t.Helper()
	p, err := delivery.NewProofImage("s3://pod-proofs/p.jpg", at, 2048)
	require.NoError(t, err)
	return p
}

// assertProofInvariant checks that delivered always carries proof.
func assertProofInvariant(t *testing.T, d *delivery.Delivery) {
	t.Helper()
	if d.Status() == delivery.Delivered {
		assert.True(t, d.HasProof(), "delivered delivery must have proof")
	}
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create an assigned delivery with bill copies", func(t *testing.T) {
		messenger := kernel.NewUUID()
		b := newBill(t)

		d, err := delivery.NewDelivery(kernel.NewUUID(), b, messenger, nil, now)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Equal(t, delivery.VerificationPending, d.VerificationStatus())
		assert.True(t, d.BillID().IsEqual(b.ID()))
		assert.True(t, d.MessengerID().IsEqual(messenger))
		assert.Nil(t, d.CoordinatorID())
		assert.Nil(t, d.DeliveryDate())
		assert.Equal(t, delivery.BillSnapshot{
			AccountNumber: "ACC-77",
			CustomerName:  "Jose Reyes",
			Address:       "4 Mabini Ave",
			Route:         "R-2",
		}, d.Bill())
		assert.Empty(t, d.PullEvents())
	})

	t.Run("should require a messenger", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), newBill(t), kernel.UUID{}, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, d)
	})

	t.Run("should reject an unconstructed bill", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), &bill.Bill{}, kernel.NewUUID(), nil, now)
		assert.ErrorIs(t, err, bill.ErrBillIsNotConstructed)
	})
}

func TestDelivery_UpdateStatus(t *testing.T) {
	messenger := kernel.NewUUID()
	later := now.Add(30 * time.Minute)

	t.Run("should start and stamp the delivery date", func(t *testing.T) {
		d := newDelivery(t, messenger)

		require.NoError(t, d.UpdateStatus(messenger, delivery.InProgress, "ignored", "on my way", later))

		assert.Equal(t, delivery.InProgress, d.Status())
		require.NotNil(t, d.DeliveryDate())
		assert.Equal(t, later, *d.DeliveryDate())
		assert.Empty(t, d.FailureReason())
		assert.Equal(t, "on my way", d.Notes())
		assert.Empty(t, d.PullEvents())
	})

	t.Run("should record the failure reason and append notes", func(t *testing.T) {
		d := newDelivery(t, messenger)
		require.NoError(t, d.UpdateStatus(messenger, delivery.InProgress, "", "first", later))

		require.NoError(t, d.UpdateStatus(messenger, delivery.Failed, "gate locked", "second", later))

		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, "gate locked", d.FailureReason())
		assert.Equal(t, "first\nsecond", d.Notes())
	})

	t.Run("should require proof for delivered and leave the delivery unchanged", func(t *testing.T) {
		d := newDelivery(t, messenger)

		err := d.UpdateStatus(messenger, delivery.Delivered, "", "done", later)

		require.ErrorIs(t, err, delivery.ErrProofRequired)
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Nil(t, d.DeliveryDate())
		assert.Empty(t, d.Notes())
		assert.Empty(t, d.PullEvents())
		assertProofInvariant(t, d)
	})

	t.Run("should refuse a non-owner and leave the delivery unchanged", func(t *testing.T) {
		d := newDelivery(t, messenger)

		err := d.UpdateStatus(kernel.NewUUID(), delivery.InProgress, "", "", later)

		require.ErrorIs(t, err, delivery.ErrNotDeliveryOwner)
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Nil(t, d.DeliveryDate())
	})

	t.Run("should refuse statuses a messenger cannot set", func(t *testing.T) {
		d := newDelivery(t, messenger)

		err := d.UpdateStatus(messenger, delivery.Verified, "", "", later)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("should refuse leaving a terminal failure", func(t *testing.T) {
		d := newDelivery(t, messenger)
		require.NoError(t, d.UpdateStatus(messenger, delivery.Failed, "no one home", "", later))

		err := d.UpdateStatus(messenger, delivery.InProgress, "", "", later)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Equal(t, delivery.Failed, d.Status())
	})

	t.Run("should emit completion when delivered with proof", func(t *testing.T) {
		d := newDelivery(t, messenger)
		require.NoError(t, d.AttachProof(messenger, proof(t, later)))
		d.PullEvents()

		require.NoError(t, d.UpdateStatus(messenger, delivery.Delivered, "", "", later.Add(time.Minute)))

		events := d.PullEvents()
		require.Len(t, events, 1)
		completed, ok := events[0].(delivery.DeliveryCompleted)
		require.True(t, ok)
		assert.True(t, completed.BillID.IsEqual(d.BillID()))
		assert.Equal(t, "delivery.completed", completed.EventName())
		assertProofInvariant(t, d)
	})
}

func TestDelivery_AttachProof(t *testing.T) {
	messenger := kernel.NewUUID()
	at := now.Add(time.Hour)

	t.Run("should jump straight to delivered from any status", func(t *testing.T) {
		for _, prepare := range []func(d *delivery.Delivery){
			func(*delivery.Delivery) {},
			func(d *delivery.Delivery) { _ = d.UpdateStatus(messenger, delivery.InProgress, "", "", now) },
			func(d *delivery.Delivery) { _ = d.UpdateStatus(messenger, delivery.Failed, "dog", "", now) },
		} {
			d := newDelivery(t, messenger)
			prepare(d)

			require.NoError(t, d.AttachProof(messenger, proof(t, at)))

			assert.Equal(t, delivery.Delivered, d.Status())
			assert.Equal(t, at, *d.DeliveryDate())
			assertProofInvariant(t, d)
		}
	})

	t.Run("should append one image per call", func(t *testing.T) {
		d := newDelivery(t, messenger)

		require.NoError(t, d.AttachProof(messenger, proof(t, at)))
		require.NoError(t, d.AttachProof(messenger, proof(t, at.Add(time.Minute))))

		images := d.ProofImages()
		require.Len(t, images, 2)
		assert.Equal(t, at, images[0].Timestamp())
		assert.Equal(t, 2048, images[1].Size())
		first, ok := d.FirstProof()
		require.True(t, ok)
		assert.Equal(t, at, first.Timestamp())
		assert.Len(t, d.PullEvents(), 2)
	})

	t.Run("should refuse a non-owner and leave the delivery unchanged", func(t *testing.T) {
		d := newDelivery(t, messenger)

		err := d.AttachProof(kernel.NewUUID(), proof(t, at))

		require.ErrorIs(t, err, delivery.ErrNotDeliveryOwner)
		assert.False(t, d.HasProof())
		assert.Equal(t, delivery.Assigned, d.Status())
	})
}

func TestDelivery_Reassign(t *testing.T) {
	messenger := kernel.NewUUID()
	coordinator := kernel.NewUUID()
	d := newDelivery(t, messenger)
	require.NoError(t, d.AttachProof(messenger, proof(t, now)))
	require.NoError(t, d.Verify(coordinator, delivery.VerificationVerified, "clear photo", now.Add(time.Hour)))
	d.PullEvents()
	next := kernel.NewUUID()

	require.NoError(t, d.Reassign(next, now.Add(2*time.Hour)))

	assert.True(t, d.MessengerID().IsEqual(next))
	assert.Equal(t, delivery.Assigned, d.Status())
	assert.Len(t, d.ProofImages(), 1)
	assert.Equal(t, delivery.VerificationVerified, d.VerificationStatus())
	assert.True(t, d.VerifiedBy().IsEqual(coordinator))
	assert.Equal(t, now.Add(time.Hour), *d.VerifiedAt())

	events := d.PullEvents()
	require.Len(t, events, 1)
	reassigned := events[0].(delivery.DeliveryReassigned)
	assert.True(t, reassigned.PreviousMessengerID.IsEqual(messenger))
	assert.True(t, reassigned.NewMessengerID.IsEqual(next))
	assert.False(t, d.IsOwnedBy(messenger))
}

func TestDelivery_Verify(t *testing.T) {
	coordinator := kernel.NewUUID()

	t.Run("should accept a decision regardless of status", func(t *testing.T) {
		d := newDelivery(t, kernel.NewUUID())

		require.NoError(t, d.Verify(coordinator, delivery.VerificationRejected, "blurry", now))

		assert.Equal(t, delivery.VerificationRejected, d.VerificationStatus())
		assert.Equal(t, "blurry", d.VerificationNotes())
		assert.True(t, d.VerifiedBy().IsEqual(coordinator))
		assert.Equal(t, now, *d.VerifiedAt())
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("should reject pending as a decision", func(t *testing.T) {
		d := newDelivery(t, kernel.NewUUID())

		err := d.Verify(coordinator, delivery.VerificationPending, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, d.VerifiedBy())
		assert.Nil(t, d.VerifiedAt())
	})
}

func TestRestoreDelivery(t *testing.T) {
	base := delivery.State{
		ID:                 kernel.NewUUID(),
		BillID:             kernel.NewUUID(),
		MessengerID:        kernel.NewUUID(),
		Status:             delivery.Delivered,
		VerificationStatus: delivery.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	t.Run("should refuse delivered without proof", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(base)
		assert.ErrorIs(t, err, delivery.ErrProofRequired)
	})

	t.Run("should restore proof images and legacy status", func(t *testing.T) {
		s := base
		s.ProofImages = []delivery.ProofImage{proof(t, now)}
		s.Status = delivery.Verified

		d, err := delivery.RestoreDelivery(s)

		require.NoError(t, err)
		assert.Equal(t, delivery.Verified, d.Status())
		assert.Len(t, d.ProofImages(), 1)
		assert.Empty(t, d.PullEvents())
	})

	t.Run("should join identity errors", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(delivery.State{})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewProofImage(t *testing.T) {
	_, err := delivery.NewProofImage("", now, 1)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = delivery.NewProofImage("data:image/png;base64,AAA", time.Time{}, 1)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = delivery.NewProofImage("x", now, -1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
