package telemetry

// FilterOccupied keeps only readings taken while the room was likely
// occupied. Unoccupied rooms sit at one of the setpoint extremes, so a
// reading counts as occupied when its cooling setpoint is below the series
// maximum and its heating setpoint is above the series minimum. Readings
// without both setpoint columns are dropped.
func FilterOccupied(readings []Reading) []Reading {
	var (
		maxCooling float64
		minHeating float64
		haveCspt   bool
		haveHpst   bool
	)

	for _, r := range readings {
		if v, ok := r.Values[ColCoolingSetpoint]; ok {
			if !haveCspt || v > maxCooling {
				maxCooling = v
				haveCspt = true
			}
		}
		if v, ok := r.Values[ColHeatingSetpoint]; ok {
			if !haveHpst || v < minHeating {
				minHeating = v
				haveHpst = true
			}
		}
	}

	if !haveCspt || !haveHpst {
		return nil
	}

	out := make([]Reading, 0, len(readings))
	for _, r := range readings {
		cspt, okC := r.Values[ColCoolingSetpoint]
		hpst, okH := r.Values[ColHeatingSetpoint]
		if !okC || !okH {
			continue
		}
		if cspt < maxCooling && hpst > minHeating {
			out = append(out, r)
		}
	}

	return out
}
