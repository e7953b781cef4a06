package api

import (
	"encoding/json"
	"testing"

	"hope-backend/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpactCalculator(t *testing.T) {
	r, _ := setupTest(t)

	rr := doJSON(r, "POST", "/api/financial/impact-calculator", `{"amount": 100}`)
	require.Equal(t, 200, rr.Code, rr.Body.String())

	var resp struct {
		Impact struct {
			FamiliesHelped int64 `json:"families_helped"`
			MealsProvided  int64 `json:"meals_provided"`
			CleanWaterDays int64 `json:"clean_water_days"`
			EducationHours int64 `json:"education_hours"`
		} `json:"impact"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Impact.FamiliesHelped)
	assert.Equal(t, int64(400), resp.Impact.MealsProvided)
	assert.Equal(t, int64(200), resp.Impact.CleanWaterDays)
	assert.Equal(t, int64(20), resp.Impact.EducationHours)
}

func TestImpactCalculator_StringAmount(t *testing.T) {
	r, _ := setupTest(t)

	rr := doJSON(r, "POST", "/api/financial/impact-calculator", `{"amount": "45"}`)
	require.Equal(t, 200, rr.Code)

	var resp struct {
		Impact struct {
			FamiliesHelped int64 `json:"families_helped"`
		} `json:"impact"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Impact.FamiliesHelped)
}

func TestCampaigns_SeededWithProgress(t *testing.T) {
	r, db := setupTest(t)
	require.NoError(t, database.SeedCampaigns(db))

	rr := doJSON(r, "GET", "/api/financial/campaigns", "")
	require.Equal(t, 200, rr.Code)

	var campaigns []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &campaigns))
	require.Len(t, campaigns, 3)
	assert.Equal(t, "Coral Restoration Project", campaigns[0]["name"])
	assert.Equal(t, float64(70), campaigns[0]["progress"])

	// Seeding again must not duplicate rows.
	require.NoError(t, database.SeedCampaigns(db))
	rr = doJSON(r, "GET", "/api/financial/campaigns", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &campaigns))
	assert.Len(t, campaigns, 3)
}

func TestCryptoAddresses(t *testing.T) {
	r, _ := setupTest(t)

	rr := doJSON(r, "GET", "/api/crypto-addresses", "")
	require.Equal(t, 200, rr.Code)

	var resp struct {
		Success   bool `json:"success"`
		Addresses struct {
			Bitcoin  string `json:"bitcoin"`
			Ethereum string `json:"ethereum"`
		} `json:"addresses"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "bc1qtestaddress", resp.Addresses.Bitcoin)
	assert.Equal(t, "0xtestaddress", resp.Addresses.Ethereum)
}

func TestFinancialOverview_ReflectsDonations(t *testing.T) {
	r, db := setupTest(t)
	require.NoError(t, database.SeedCampaigns(db))

	require.Equal(t, 200, doJSON(r, "POST", "/api/donate", `{"amount": "1000", "paymentMethod": "bitcoin", "donorName": "A", "donorEmail": "a@x.com"}`).Code)

	rr := doJSON(r, "GET", "/api/financial/overview", "")
	require.Equal(t, 200, rr.Code)

	var resp struct {
		TotalDonations      string           `json:"total_donations"`
		ProgramExpenses     string           `json:"program_expenses"`
		AdminExpenses       string           `json:"admin_expenses"`
		FundraisingExpenses string           `json:"fundraising_expenses"`
		ActiveCampaigns     []map[string]any `json:"active_campaigns"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "1000.00", resp.TotalDonations)
	assert.Equal(t, "800.00", resp.ProgramExpenses)
	assert.Equal(t, "120.00", resp.AdminExpenses)
	assert.Equal(t, "80.00", resp.FundraisingExpenses)
	assert.Len(t, resp.ActiveCampaigns, 3)
}

func TestHealthCheck(t *testing.T) {
	r, _ := setupTest(t)

	rr := doJSON(r, "GET", "/api/health", "")
	require.Equal(t, 200, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "ok", resp["database"])
}
