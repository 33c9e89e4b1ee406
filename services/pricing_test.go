package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCharterPricing_KnownBreakdown(t *testing.T) {
	out, err := ComputeCharterPricing(CharterPricingInput{
		NetBoatRentalWithoutCommission: 1000,
		Commission:                     100,
		FuelCost:                       150,
		PlatformCommissionPct:          3,
	})
	require.NoError(t, err)

	require.InDelta(t, 1100, out.NetBoatRentalWithoutVAT, 1e-9)
	require.InDelta(t, 264, out.VAT, 1e-9)
	require.InDelta(t, 1364, out.BoatRentalDay, 1e-9)
	require.InDelta(t, 1514, out.PriceVATAndFuelIncluded, 1e-9)
	require.InDelta(t, 33, out.EzsailSeaServicesCommission, 1e-9)
	require.InDelta(t, 1547, out.FinalPrice, 1e-9)
}

func TestComputeCharterPricing_RoundTrip(t *testing.T) {
	cases := []CharterPricingInput{
		{NetBoatRentalWithoutCommission: 0, Commission: 0, FuelCost: 0, PlatformCommissionPct: 0},
		{NetBoatRentalWithoutCommission: 2500, Commission: 0, FuelCost: 300, PlatformCommissionPct: 5},
		{NetBoatRentalWithoutCommission: 799.99, Commission: 120.5, FuelCost: 64.25, PlatformCommissionPct: 12.5},
		{NetBoatRentalWithoutCommission: 10000, Commission: 1500, FuelCost: 0, PlatformCommissionPct: 100},
	}

	for _, in := range cases {
		out, err := ComputeCharterPricing(in)
		require.NoError(t, err)

		net := in.NetBoatRentalWithoutCommission + in.Commission
		require.InDelta(t, net*(1+VATRate)+in.FuelCost, out.PriceVATAndFuelIncluded, 1e-9)
		require.InDelta(t, out.PriceVATAndFuelIncluded+net*(in.PlatformCommissionPct/100), out.FinalPrice, 1e-9)

		// recomputing from the stored inputs must reproduce the stored outputs
		again, err := ComputeCharterPricing(CharterPricingInput{
			NetBoatRentalWithoutCommission: out.NetBoatRentalWithoutCommission,
			Commission:                     out.Commission,
			FuelCost:                       out.FuelCost,
			PlatformCommissionPct:          in.PlatformCommissionPct,
		})
		require.NoError(t, err)
		require.Equal(t, out, again)
	}
}

func TestComputeCharterPricing_ZeroCommissionPct(t *testing.T) {
	out, err := ComputeCharterPricing(CharterPricingInput{
		NetBoatRentalWithoutCommission: 500,
		Commission:                     50,
		FuelCost:                       25,
	})
	require.NoError(t, err)
	require.Zero(t, out.EzsailSeaServicesCommission)
	require.InDelta(t, out.PriceVATAndFuelIncluded, out.FinalPrice, 1e-9)
}

func TestComputeCharterPricing_RejectsBadInputs(t *testing.T) {
	_, err := ComputeCharterPricing(CharterPricingInput{
		NetBoatRentalWithoutCommission: math.NaN(),
	})
	require.ErrorIs(t, err, ErrPricingInputNotANumber)

	_, err = ComputeCharterPricing(CharterPricingInput{
		NetBoatRentalWithoutCommission: 100,
		FuelCost:                       math.Inf(1),
	})
	require.ErrorIs(t, err, ErrPricingInputNotANumber)

	_, err = ComputeCharterPricing(CharterPricingInput{
		NetBoatRentalWithoutCommission: 100,
		Commission:                     -1,
	})
	require.ErrorIs(t, err, ErrPricingInputNegative)
}
