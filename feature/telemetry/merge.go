package telemetry

// MergeOutsideAir left-joins a room series with the outside-air series on
// timestamp. Every room reading is kept; outside-air values are added where
// a matching timestamp exists. On column collision the room value wins.
func MergeOutsideAir(room, oa *Series) *Series {
	oaByTime := make(map[int64]Reading, len(oa.Readings))
	for _, r := range oa.Readings {
		oaByTime[r.Timestamp.Unix()] = r
	}

	merged := &Series{
		Columns:   mergeColumns(room.Columns, oa.Columns),
		Readings:  make([]Reading, 0, len(room.Readings)),
		RowErrors: room.RowErrors,
	}

	for _, r := range room.Readings {
		out := Reading{Timestamp: r.Timestamp, Values: make(map[string]float64, len(r.Values))}
		if oaReading, ok := oaByTime[r.Timestamp.Unix()]; ok {
			for k, v := range oaReading.Values {
				out.Values[k] = v
			}
		}
		for k, v := range r.Values {
			out.Values[k] = v
		}
		merged.Readings = append(merged.Readings, out)
	}

	return merged
}

func mergeColumns(room, oa []string) []string {
	seen := make(map[string]struct{}, len(room))
	out := make([]string, 0, len(room)+len(oa))
	for _, c := range room {
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range oa {
		if _, ok := seen[c]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
