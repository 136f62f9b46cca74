package attendance

// TotalHours folds a chronologically ordered swipe log into worked hours.
// Only completed IN->OUT pairs count. The pairing rule is deterministic:
//   - an IN replaces any currently open IN, so an OUT always closes the
//     most recent still-open IN
//   - an OUT with no open IN is ignored
//   - a trailing open IN contributes nothing
func TotalHours(events []Event) float64 {
	total := 0.0
	var openIn *Event

	for i := range events {
		e := &events[i]
		switch e.Type {
		case SwipeIn:
			openIn = e
		case SwipeOut:
			if openIn != nil {
				total += e.Timestamp.Sub(openIn.Timestamp).Hours()
				openIn = nil
			}
		}
	}
	return total
}
