package services

import (
	"charityhub/models"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDonationAccumulatesAndCompletes(t *testing.T) {
	db := newTestDB(t)
	_, ngo := createNGO(t, db, "helpinghands", true)
	donor, _ := createDonor(t, db, "alice")
	category := createCategory(t, db, "Education")
	request := createRequest(t, db, ngo, category, 100, models.RequestStatusApproved)

	ledger := NewLedger(db)

	donation, snapshot, err := ledger.ApplyDonation(donor, request.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 60.0, donation.AmountDonated)
	assert.NotEmpty(t, donation.TransactionRef)
	assert.Equal(t, 60.0, snapshot.AmountReceived)
	assert.Equal(t, models.RequestStatusApproved, snapshot.Status)
	assert.Equal(t, 40.0, snapshot.Remaining())

	// Second donation hits the target exactly and completes the request
	_, snapshot, err = ledger.ApplyDonation(donor, request.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 100.0, snapshot.AmountReceived)
	assert.Equal(t, models.RequestStatusCompleted, snapshot.Status)

	// Completed requests accept no further donations
	_, _, err = ledger.ApplyDonation(donor, request.ID, 1)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestApplyDonationRejectsNonPositiveAmounts(t *testing.T) {
	db := newTestDB(t)
	_, ngo := createNGO(t, db, "helpinghands", true)
	donor, _ := createDonor(t, db, "alice")
	category := createCategory(t, db, "Education")
	request := createRequest(t, db, ngo, category, 100, models.RequestStatusApproved)

	ledger := NewLedger(db)

	for _, amount := range []float64{0, -5} {
		_, _, err := ledger.ApplyDonation(donor, request.ID, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	var count int64
	require.NoError(t, db.Model(&models.Donation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyDonationRejectsOvershoot(t *testing.T) {
	db := newTestDB(t)
	_, ngo := createNGO(t, db, "helpinghands", true)
	donor, _ := createDonor(t, db, "alice")
	category := createCategory(t, db, "Education")
	request := createRequest(t, db, ngo, category, 100, models.RequestStatusApproved)

	ledger := NewLedger(db)

	_, _, err := ledger.ApplyDonation(donor, request.ID, 60)
	require.NoError(t, err)

	// 50 over the remaining 40: rejected with no side effects
	_, _, err = ledger.ApplyDonation(donor, request.ID, 50)
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)

	var reloaded models.DonationRequest
	require.NoError(t, db.First(&reloaded, request.ID).Error)
	assert.Equal(t, 60.0, reloaded.AmountReceived)
	assert.Equal(t, models.RequestStatusApproved, reloaded.Status)

	var count int64
	require.NoError(t, db.Model(&models.Donation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyDonationGuardsStatusAndExistence(t *testing.T) {
	db := newTestDB(t)
	_, ngo := createNGO(t, db, "helpinghands", true)
	donor, _ := createDonor(t, db, "alice")
	category := createCategory(t, db, "Education")

	pending := createRequest(t, db, ngo, category, 100, models.RequestStatusPending)
	rejected := createRequest(t, db, ngo, category, 100, models.RequestStatusRejected)

	ledger := NewLedger(db)

	_, _, err := ledger.ApplyDonation(donor, pending.ID, 10)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, _, err = ledger.ApplyDonation(donor, rejected.ID, 10)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, _, err = ledger.ApplyDonation(donor, 9999, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyDonationRequiresDonorRole(t *testing.T) {
	db := newTestDB(t)
	ngoActor, ngo := createNGO(t, db, "helpinghands", true)
	category := createCategory(t, db, "Education")
	request := createRequest(t, db, ngo, category, 100, models.RequestStatusApproved)

	ledger := NewLedger(db)

	_, _, err := ledger.ApplyDonation(ngoActor, request.ID, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)

	admin := createAdmin(t, db)
	_, _, err = ledger.ApplyDonation(admin, request.ID, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestConcurrentDonationsNeverOvershoot(t *testing.T) {
	db := newTestDB(t)
	_, ngo := createNGO(t, db, "helpinghands", true)
	category := createCategory(t, db, "Education")
	request := createRequest(t, db, ngo, category, 100, models.RequestStatusApproved)

	alice, _ := createDonor(t, db, "alice")
	bob, _ := createDonor(t, db, "bob")

	ledger := NewLedger(db)

	// Two 60s against a 100 target: exactly one may land
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, actor := range []Identity{alice, bob} {
		wg.Add(1)
		go func(i int, actor Identity) {
			defer wg.Done()
			_, _, errs[i] = ledger.ApplyDonation(actor, request.ID, 60)
		}(i, actor)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrAmountExceedsRemaining)
		}
	}
	assert.Equal(t, 1, succeeded)

	var reloaded models.DonationRequest
	require.NoError(t, db.First(&reloaded, request.ID).Error)
	assert.Equal(t, 60.0, reloaded.AmountReceived)
	assert.LessOrEqual(t, reloaded.AmountReceived, reloaded.AmountNeeded)

	var count int64
	require.NoError(t, db.Model(&models.Donation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDonationsForDonorOrderedMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	_, ngo := createNGO(t, db, "helpinghands", true)
	donor, profile := createDonor(t, db, "alice")
	other, _ := createDonor(t, db, "bob")
	category := createCategory(t, db, "Education")
	request := createRequest(t, db, ngo, category, 1000, models.RequestStatusApproved)

	base := time.Now().Add(-time.Hour)
	for i, amount := range []float64{10, 20, 30} {
		donation := models.Donation{
			DonorID:           profile.ID,
			DonationRequestID: request.ID,
			AmountDonated:     amount,
			TransactionRef:    "ref",
		}
		donation.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&donation).Error)
	}

	ledger := NewLedger(db)

	// Another donor's activity must not leak into the history
	_, _, err := ledger.ApplyDonation(other, request.ID, 5)
	require.NoError(t, err)

	donations, err := ledger.DonationsForDonor(donor)
	require.NoError(t, err)
	require.Len(t, donations, 3)
	assert.Equal(t, 30.0, donations[0].AmountDonated)
	assert.Equal(t, 20.0, donations[1].AmountDonated)
	assert.Equal(t, 10.0, donations[2].AmountDonated)
	assert.Equal(t, request.ID, donations[0].DonationRequest.ID)
	assert.Equal(t, ngo.ID, donations[0].DonationRequest.NGO.ID)
}
