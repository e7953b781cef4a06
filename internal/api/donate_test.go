package api

import (
	"encoding/json"
	"testing"

	"hope-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonate_AcceptedMethodCreatesDonationAndPayment(t *testing.T) {
	r, db := setupTest(t)

	rr := doJSON(r, "POST", "/api/donate", `{
		"amount": "100",
		"paymentMethod": "bitcoin",
		"donorName": "A",
		"donorEmail": "a@x.com",
		"anonymous": false
	}`)
	require.Equal(t, 200, rr.Code, rr.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "100", resp["amount"])
	assert.Equal(t, "bitcoin", resp["paymentMethod"])
	assert.NotEmpty(t, resp["transactionId"])

	var donations []models.Donation
	require.NoError(t, db.Find(&donations).Error)
	require.Len(t, donations, 1)
	assert.True(t, donations[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "bitcoin", donations[0].PaymentMethod)
	assert.Equal(t, "A", donations[0].DonorName)
	assert.Equal(t, "a@x.com", donations[0].DonorEmail)
	assert.False(t, donations[0].Anonymous)

	var payments []models.Payment
	require.NoError(t, db.Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, "pending", payments[0].Status)
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, payments[0].DonationID)
	assert.Equal(t, donations[0].ID, *payments[0].DonationID)
}

func TestDonate_RejectedMethodsCreateNoRows(t *testing.T) {
	r, db := setupTest(t)

	for _, method := range []string{"visa", "mpesa", "card", "bank-transfer", "paypal"} {
		rr := doJSON(r, "POST", "/api/donate", `{
			"amount": "50",
			"paymentMethod": "`+method+`",
			"donorName": "B",
			"donorEmail": "b@x.com"
		}`)
		assert.Equal(t, 400, rr.Code, "method %s", method)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"], "method %s", method)
	}

	var donationCount, paymentCount int64
	db.Model(&models.Donation{}).Count(&donationCount)
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Zero(t, donationCount)
	assert.Zero(t, paymentCount)
}

func TestDonate_CustomAmountResolution(t *testing.T) {
	r, db := setupTest(t)

	rr := doJSON(r, "POST", "/api/donate", `{
		"amount": "custom",
		"customAmount": "25",
		"paymentMethod": "ethereum",
		"donorName": "C",
		"donorEmail": "c@x.com"
	}`)
	require.Equal(t, 200, rr.Code, rr.Body.String())

	var donation models.Donation
	require.NoError(t, db.First(&donation).Error)
	assert.True(t, donation.Amount.Equal(decimal.NewFromInt(25)))
}

func TestDonate_PresetAmountIgnoresCustomField(t *testing.T) {
	r, db := setupTest(t)

	rr := doJSON(r, "POST", "/api/donate", `{
		"amount": "50",
		"customAmount": "9999",
		"paymentMethod": "bitcoin",
		"donorName": "D",
		"donorEmail": "d@x.com"
	}`)
	require.Equal(t, 200, rr.Code, rr.Body.String())

	var donation models.Donation
	require.NoError(t, db.First(&donation).Error)
	assert.True(t, donation.Amount.Equal(decimal.NewFromInt(50)))
}

func TestDonate_InvalidAmounts(t *testing.T) {
	r, db := setupTest(t)

	bodies := []string{
		`{"amount": "0", "paymentMethod": "bitcoin", "donorName": "E", "donorEmail": "e@x.com"}`,
		`{"amount": "-5", "paymentMethod": "bitcoin", "donorName": "E", "donorEmail": "e@x.com"}`,
		`{"amount": "custom", "customAmount": "", "paymentMethod": "bitcoin", "donorName": "E", "donorEmail": "e@x.com"}`,
		`{"amount": "", "paymentMethod": "bitcoin", "donorName": "E", "donorEmail": "e@x.com"}`,
		`{"amount": "abc", "paymentMethod": "bitcoin", "donorName": "E", "donorEmail": "e@x.com"}`,
	}
	for _, body := range bodies {
		rr := doJSON(r, "POST", "/api/donate", body)
		assert.Equal(t, 400, rr.Code, body)
	}

	var count int64
	db.Model(&models.Donation{}).Count(&count)
	assert.Zero(t, count)
}

func TestDonate_RequiresDonorIdentity(t *testing.T) {
	r, _ := setupTest(t)

	rr := doJSON(r, "POST", "/api/donate", `{"amount": "10", "paymentMethod": "bitcoin", "donorEmail": "f@x.com"}`)
	assert.Equal(t, 400, rr.Code)

	rr = doJSON(r, "POST", "/api/donate", `{"amount": "10", "paymentMethod": "bitcoin", "donorName": "F", "donorEmail": "not-an-email"}`)
	assert.Equal(t, 400, rr.Code)
}

func TestDonate_AnonymousFlagPersisted(t *testing.T) {
	r, db := setupTest(t)

	rr := doJSON(r, "POST", "/api/donate", `{
		"amount": "75",
		"paymentMethod": "bitcoin",
		"donorName": "Secret Donor",
		"donorEmail": "secret@x.com",
		"anonymous": true
	}`)
	require.Equal(t, 200, rr.Code, rr.Body.String())

	var donation models.Donation
	require.NoError(t, db.First(&donation).Error)
	assert.True(t, donation.Anonymous)
	// The record itself keeps the identity; only notifications omit it.
	assert.Equal(t, "Secret Donor", donation.DonorName)
}

func TestDonate_NewsletterOptInCreatesSubscription(t *testing.T) {
	r, db := setupTest(t)

	rr := doJSON(r, "POST", "/api/donate", `{
		"amount": "10",
		"paymentMethod": "ethereum",
		"donorName": "G",
		"donorEmail": "g@x.com",
		"newsletter": true
	}`)
	require.Equal(t, 200, rr.Code, rr.Body.String())

	var sub models.NewsletterSubscription
	require.NoError(t, db.Where("email = ?", "g@x.com").First(&sub).Error)
	assert.Equal(t, "active", sub.Status)
}
