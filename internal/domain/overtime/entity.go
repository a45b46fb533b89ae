package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeRecord is one day's worked extra hours for one employee. A record
// carries either holiday hours or tier1/tier2 weekday hours, never both.
// Tier1 covers the first two extra hours of the day, tier2 everything beyond.
type OvertimeRecord struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	IsHoliday    bool
	HolidayHours decimal.Decimal
	Tier1Hours   decimal.Decimal
	Tier2Hours   decimal.Decimal
	Note         *string
	CreatedAt    time.Time
}
