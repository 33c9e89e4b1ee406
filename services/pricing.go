package services

import (
	"errors"
	"math"
)

// VATRate is the Greek VAT applied to boat rentals. Fixed for now; make it
// per-operator configuration if a second jurisdiction is ever onboarded.
const VATRate = 0.24

// CharterPricingInput carries the caller-supplied primitives. The platform
// commission percentage comes from the owning operator's profile, not from
// the request.
type CharterPricingInput struct {
	NetBoatRentalWithoutCommission float64
	Commission                     float64
	FuelCost                       float64
	PlatformCommissionPct          float64
}

// CharterPricing is the full monetary breakdown persisted on a
// CharterItinerary.
type CharterPricing struct {
	NetBoatRentalWithoutCommission float64
	Commission                     float64
	FuelCost                       float64

	NetBoatRentalWithoutVAT     float64
	VAT                         float64
	BoatRentalDay               float64
	PriceVATAndFuelIncluded     float64
	EzsailSeaServicesCommission float64
	FinalPrice                  float64
}

var (
	ErrPricingInputNotANumber = errors.New("pricing_input_not_a_number")
	ErrPricingInputNegative   = errors.New("pricing_input_negative")
)

func validPricingNumber(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrPricingInputNotANumber
	}
	if v < 0 {
		return ErrPricingInputNegative
	}
	return nil
}

// ComputeCharterPricing derives the dependent monetary fields from the four
// primitives. Pure and stateless; persisting the result is the caller's job.
//
//	netBoatRentalWithoutVAT     = netBoatRentalWithoutCommission + commission
//	vat                         = netBoatRentalWithoutVAT * 0.24
//	boatRentalDay               = netBoatRentalWithoutVAT + vat
//	priceVATAndFuelIncluded     = boatRentalDay + fuelCost
//	ezsailSeaServicesCommission = netBoatRentalWithoutVAT * pct / 100
//	finalPrice                  = priceVATAndFuelIncluded + ezsailSeaServicesCommission
func ComputeCharterPricing(in CharterPricingInput) (CharterPricing, error) {
	for _, v := range []float64{in.NetBoatRentalWithoutCommission, in.Commission, in.FuelCost, in.PlatformCommissionPct} {
		if err := validPricingNumber(v); err != nil {
			return CharterPricing{}, err
		}
	}

	out := CharterPricing{
		NetBoatRentalWithoutCommission: in.NetBoatRentalWithoutCommission,
		Commission:                     in.Commission,
		FuelCost:                       in.FuelCost,
	}

	out.NetBoatRentalWithoutVAT = in.NetBoatRentalWithoutCommission + in.Commission
	out.VAT = out.NetBoatRentalWithoutVAT * VATRate
	out.BoatRentalDay = out.NetBoatRentalWithoutVAT + out.VAT
	out.PriceVATAndFuelIncluded = out.BoatRentalDay + in.FuelCost
	out.EzsailSeaServicesCommission = out.NetBoatRentalWithoutVAT * (in.PlatformCommissionPct / 100)
	out.FinalPrice = out.PriceVATAndFuelIncluded + out.EzsailSeaServicesCommission

	return out, nil
}
