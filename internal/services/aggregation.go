package services

import (
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/types"
)

// aggregateMarketData computes a price snapshot and per-region activity
// counters from a batch of provider records. Prices that do not parse as
// decimals stay out of the averages and powers that do not parse as
// integers stay out of the total; the records themselves are stored
// verbatim either way.
func aggregateMarketData(
	providers []*model.StorageProvider, filUSDRate string, timestamp uint64,
) (*model.PriceSnapshot, *model.ActivePerRegion) {
	priceSums := make(map[types.Region]sdkmath.LegacyDec)
	priceCounts := make(map[types.Region]int64)
	activeCounts := make(map[types.Region]uint32)

	globalSum := sdkmath.LegacyZeroDec()
	globalCount := int64(0)
	totalPower := sdkmath.ZeroInt()

	for _, provider := range providers {
		region := types.ParseRegion(string(provider.Region))
		activeCounts[region]++

		if power, ok := sdkmath.NewIntFromString(provider.Power); ok {
			totalPower = totalPower.Add(power)
		}

		price, err := sdkmath.LegacyNewDecFromStr(provider.Price)
		if err != nil {
			continue
		}

		sum, ok := priceSums[region]
		if !ok {
			sum = sdkmath.LegacyZeroDec()
		}
		priceSums[region] = sum.Add(price)
		priceCounts[region]++

		globalSum = globalSum.Add(price)
		globalCount++
	}

	averageFor := func(region types.Region) string {
		count := priceCounts[region]
		if count == 0 {
			return "0"
		}
		return decString(priceSums[region].Quo(sdkmath.LegacyNewDec(count)))
	}

	globalPrice := "0"
	if globalCount > 0 {
		globalPrice = decString(globalSum.Quo(sdkmath.LegacyNewDec(globalCount)))
	}

	snapshot := &model.PriceSnapshot{
		Timestamp:    timestamp,
		Europe:       averageFor(types.RegionEurope),
		Asia:         averageFor(types.RegionAsia),
		NorthAmerica: averageFor(types.RegionNorthAmerica),
		Other:        averageFor(types.RegionOther),
		GlobalPrice:  globalPrice,
		FilUSD:       filUSDRate,
		TotalPower:   totalPower.String(),
	}

	counters := &model.ActivePerRegion{
		Europe:       activeCounts[types.RegionEurope],
		Asia:         activeCounts[types.RegionAsia],
		NorthAmerica: activeCounts[types.RegionNorthAmerica],
		Other:        activeCounts[types.RegionOther],
	}

	return snapshot, counters
}

// decString renders a decimal without the fixed 18 digit fraction that
// LegacyDec.String produces.
func decString(d sdkmath.LegacyDec) string {
	s := strings.TrimRight(d.String(), "0")
	return strings.TrimSuffix(s, ".")
}
