package project

import (
	"encoding/json"
	"reflect"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of plan dates.
const DateLayout = "2006-01-02"

// Date is a calendar day carried as YYYY-MM-DD on the wire. It converts to
// datatypes.Date at the model boundary.
type Date time.Time

// NewDate returns the given day at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func DateOf(d datatypes.Date) Date {
	t := time.Time(d)
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Model() datatypes.Date {
	return datatypes.Date(d)
}

func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d Date) Before(o Date) bool {
	return time.Time(d).Before(time.Time(o))
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" only. Failures are reported as
// *json.UnmarshalTypeError so the decoder records the offending field.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(Date{})}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + s, Type: reflect.TypeOf(Date{})}
	}
	*d = Date(t)
	return nil
}
