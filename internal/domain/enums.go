package domain

import (
	"fmt"
	"strings"
)

// Category is one of the four fixed project buckets a task belongs to.
type Category string

const (
	CategoryFoundation Category = "F"
	CategoryDrive      Category = "D"
	CategoryJoy        Category = "J"
	CategoryReflection Category = "R"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryFoundation, CategoryDrive, CategoryJoy, CategoryReflection}

var categoryNames = map[Category]string{
	CategoryFoundation: "Foundation",
	CategoryDrive:      "Drive",
	CategoryJoy:        "Joy",
	CategoryReflection: "Reflection",
}

// categoryAliases maps accepted spellings (upper-cased) to categories.
// The Cyrillic single-letter codes keep files exported by the original
// web planner importable.
var categoryAliases = map[string]Category{
	"F": CategoryFoundation, "FOUNDATION": CategoryFoundation, "Ф": CategoryFoundation,
	"D": CategoryDrive, "DRIVE": CategoryDrive, "Д": CategoryDrive,
	"J": CategoryJoy, "JOY": CategoryJoy, "К": CategoryJoy,
	"R": CategoryReflection, "REFLECTION": CategoryReflection, "Р": CategoryReflection,
}

// ParseCategory resolves a category code, English name, or legacy code.
func ParseCategory(s string) (Category, error) {
	if c, ok := categoryAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Name returns the human-readable category name.
func (c Category) Name() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Day is a day of the week, Monday first.
type Day string

const (
	Monday    Day = "MON"
	Tuesday   Day = "TUE"
	Wednesday Day = "WED"
	Thursday  Day = "THU"
	Friday    Day = "FRI"
	Saturday  Day = "SAT"
	Sunday    Day = "SUN"
)

// Days lists the week in its fixed iteration order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

var dayAliases = map[string]Day{
	"MON": Monday, "MONDAY": Monday, "ПН": Monday,
	"TUE": Tuesday, "TUESDAY": Tuesday, "ВТ": Tuesday,
	"WED": Wednesday, "WEDNESDAY": Wednesday, "СР": Wednesday,
	"THU": Thursday, "THURSDAY": Thursday, "ЧТ": Thursday,
	"FRI": Friday, "FRIDAY": Friday, "ПТ": Friday,
	"SAT": Saturday, "SATURDAY": Saturday, "СБ": Saturday,
	"SUN": Sunday, "SUNDAY": Sunday, "ВС": Sunday,
}

// ParseDay resolves a day code, English name, or legacy code.
func ParseDay(s string) (Day, error) {
	if d, ok := dayAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown day %q", s)
}

// Index returns the Monday-based offset of the day (0..6), or -1 if unknown.
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

func (d Day) Name() string {
	if n, ok := dayNames[d]; ok {
		return n
	}
	return string(d)
}

func (d Day) Valid() bool {
	return d.Index() >= 0
}
