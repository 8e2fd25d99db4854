package stats

import "github.com/agrolab/farm-controller/internal/domain/farm"

// Compute aggregates min/avg/max temperature and humidity plus device
// runtime counts over the given entries. It is a pure function of the
// snapshot and does not mutate it.
//
// The second return value is false when there are no entries: callers get an
// explicit no-data signal instead of fabricated zeros.
func Compute(entries []farm.LogEntry) (farm.Statistics, bool) {
	if len(entries) == 0 {
		return farm.Statistics{}, false
	}

	result := farm.Statistics{
		MinTemperature: entries[0].Reading.Temperature,
		MaxTemperature: entries[0].Reading.Temperature,
		MinHumidity:    entries[0].Reading.Humidity,
		MaxHumidity:    entries[0].Reading.Humidity,
		TotalRecords:   len(entries),
	}

	var tempSum, humidSum float64

	for _, entry := range entries {
		temp, humid := entry.Reading.Temperature, entry.Reading.Humidity

		tempSum += temp
		humidSum += humid

		if temp < result.MinTemperature {
			result.MinTemperature = temp
		}

		if temp > result.MaxTemperature {
			result.MaxTemperature = temp
		}

		if humid < result.MinHumidity {
			result.MinHumidity = humid
		}

		if humid > result.MaxHumidity {
			result.MaxHumidity = humid
		}

		if entry.FanOn {
			result.FanRuntime++
		}

		if entry.PumpOn {
			result.PumpRuntime++
		}
	}

	result.AvgTemperature = farm.Round1(tempSum / float64(len(entries)))
	result.AvgHumidity = farm.Round1(humidSum / float64(len(entries)))

	return result, true
}
