package domain

// DayAllocation is the planned minutes per category for one day.
type DayAllocation struct {
	Foundation int
	Drive      int
	Joy        int
	Reflection int
}

// Total returns the day's planned minutes across categories.
func (a DayAllocation) Total() int {
	return a.Foundation + a.Drive + a.Joy + a.Reflection
}

// Minutes returns the allocation for one category.
func (a DayAllocation) Minutes(c Category) int {
	switch c {
	case CategoryFoundation:
		return a.Foundation
	case CategoryDrive:
		return a.Drive
	case CategoryJoy:
		return a.Joy
	case CategoryReflection:
		return a.Reflection
	}
	return 0
}

// WeekStructure is a named time-allocation template for a week.
type WeekStructure struct {
	Option      int
	Description string
	Days        map[Day]DayAllocation
}

const (
	MinStructureOption = 1
	MaxStructureOption = 5
)

// ValidStructureOption reports whether option names a preset.
func ValidStructureOption(option int) bool {
	return option >= MinStructureOption && option <= MaxStructureOption
}

func weekdays(a DayAllocation, sat, sun DayAllocation) map[Day]DayAllocation {
	return map[Day]DayAllocation{
		Monday: a, Tuesday: a, Wednesday: a, Thursday: a, Friday: a,
		Saturday: sat, Sunday: sun,
	}
}

var structures = map[int]WeekStructure{
	1: {
		Option:      1,
		Description: "90 min weekdays, joy Saturday, foundation + reflection Sunday",
		Days: weekdays(
			DayAllocation{Foundation: 25, Drive: 50, Joy: 15},
			DayAllocation{Joy: 90},
			DayAllocation{Foundation: 60, Reflection: 30},
		),
	},
	2: {
		Option:      2,
		Description: "45 min weekdays, 3h weekend days",
		Days: weekdays(
			DayAllocation{Foundation: 10, Drive: 30, Joy: 5},
			DayAllocation{Joy: 180},
			DayAllocation{Foundation: 150, Reflection: 30},
		),
	},
	3: {
		Option:      3,
		Description: "60 min weekdays, 2.5h weekend days",
		Days: weekdays(
			DayAllocation{Foundation: 10, Drive: 45, Joy: 5},
			DayAllocation{Joy: 150},
			DayAllocation{Foundation: 120, Reflection: 30},
		),
	},
	4: {
		Option:      4,
		Description: "2.5h on Mon/Wed/Fri, foundation + reflection Sunday",
		Days: map[Day]DayAllocation{
			Monday:    {Foundation: 60, Drive: 75, Joy: 15},
			Wednesday: {Foundation: 60, Drive: 75, Joy: 15},
			Friday:    {Foundation: 60, Drive: 75, Joy: 15},
			Sunday:    {Foundation: 120, Reflection: 30},
		},
	},
	5: {
		Option:      5,
		Description: "3h on Mon/Wed/Sun",
		Days: map[Day]DayAllocation{
			Monday:    {Foundation: 60, Drive: 90, Joy: 30},
			Wednesday: {Foundation: 60, Drive: 90, Joy: 30},
			Sunday:    {Foundation: 60, Joy: 90, Reflection: 30},
		},
	},
}

// StructureFor returns the preset for option, falling back to option 1.
func StructureFor(option int) WeekStructure {
	if s, ok := structures[option]; ok {
		return s
	}
	return structures[MinStructureOption]
}

// Allocation returns the preset minutes for one day (zero when the day is free).
func (s WeekStructure) Allocation(day Day) DayAllocation {
	return s.Days[day]
}

// TotalMinutes sums every day of the preset.
func (s WeekStructure) TotalMinutes() int {
	total := 0
	for _, a := range s.Days {
		total += a.Total()
	}
	return total
}
