package calendar

import "time"

// Market identifies an exchange whose trading hours gate collection.
type Market string

const (
	// MarketKRX is the Korean regular session (Asia/Seoul, 09:00-15:30).
	MarketKRX Market = "KRX"
	// MarketUS is the NYSE/NASDAQ regular session (America/New_York, 09:30-16:00).
	MarketUS Market = "US"
	// MarketHKEX is the Hong Kong session pair (Asia/Hong_Kong,
	// 10:30-13:00 and 14:00-17:00).
	MarketHKEX Market = "HKEX"
	// MarketFX is the interbank currency market, closed only on weekends.
	MarketFX Market = "FX"
)

type session struct {
	openHour, openMin   int
	closeHour, closeMin int
	// closeInclusive keeps the boundary minute inside the session
	// (the KRX and US closes count 15:30:00 / 16:00:00 as open).
	closeInclusive bool
}

type schedule struct {
	zone     string
	sessions []session
}

var schedules = map[Market]schedule{
	MarketKRX: {
		zone: "Asia/Seoul",
		sessions: []session{
			{openHour: 9, openMin: 0, closeHour: 15, closeMin: 30, closeInclusive: true},
		},
	},
	MarketUS: {
		zone: "America/New_York",
		sessions: []session{
			{openHour: 9, openMin: 30, closeHour: 16, closeMin: 0, closeInclusive: true},
		},
	},
	MarketHKEX: {
		zone: "Asia/Hong_Kong",
		sessions: []session{
			{openHour: 10, openMin: 30, closeHour: 13, closeMin: 0},
			{openHour: 14, openMin: 0, closeHour: 17, closeMin: 0},
		},
	},
	MarketFX: {
		zone: "Asia/Seoul",
		// no intraday sessions: open around the clock on weekdays
	},
}

// Open reports whether the market is in a regular trading session at the
// given instant. It is a pure predicate: no side effects, no failure modes.
func Open(market Market, now time.Time) bool {
	sched, ok := schedules[market]
	if !ok {
		return false
	}

	loc, err := time.LoadLocation(sched.zone)
	if err != nil {
		return false
	}
	local := now.In(loc)

	if day := local.Weekday(); day == time.Saturday || day == time.Sunday {
		return false
	}

	if len(sched.sessions) == 0 {
		return true
	}

	minuteOfDay := local.Hour()*60 + local.Minute()
	for _, s := range sched.sessions {
		openAt := s.openHour*60 + s.openMin
		closeAt := s.closeHour*60 + s.closeMin
		if minuteOfDay < openAt {
			continue
		}
		if s.closeInclusive {
			if minuteOfDay <= closeAt {
				return true
			}
		} else if minuteOfDay < closeAt {
			return true
		}
	}
	return false
}

// GlobalOpen reports whether any of the covered overseas equity markets is
// in session. It drives the overseas polling gate.
func GlobalOpen(now time.Time) bool {
	return Open(MarketUS, now) || Open(MarketHKEX, now)
}

// WeekendIn reports whether the given calendar date falls on a weekend in
// the market's own timezone. Rollover uses it to skip dates on which no
// data could have been collected. The date is taken at face value (its
// year/month/day), not shifted into the market zone.
func WeekendIn(market Market, date time.Time) bool {
	sched, ok := schedules[market]
	if !ok {
		return false
	}
	loc, err := time.LoadLocation(sched.zone)
	if err != nil {
		return false
	}
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc).Weekday()
	return day == time.Saturday || day == time.Sunday
}

// MarketForExchange maps an overseas exchange code to its market.
func MarketForExchange(exchangeCode string) Market {
	switch exchangeCode {
	case "HKS":
		return MarketHKEX
	case "NAS", "NYS":
		return MarketUS
	default:
		return MarketUS
	}
}
