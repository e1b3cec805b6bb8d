package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validForm() Form {
	return Form{
		Route:     "1",
		Driver:    "Mario Alagase",
		Crew:      []string{"Joey Cantay"},
		Areas:     []string{"Cogon"},
		Time:      "07:00",
		EndTime:   "15:00",
		Type:      "Dili Malata",
		Frequency: "Daily",
		DayOff:    "Sunday",
	}
}

func TestValidate_ValidForm(t *testing.T) {
	assert.Empty(t, Validate(validForm()))
}

func TestValidate_RequiredFields(t *testing.T) {
	errs := Validate(Form{})
	assert.Equal(t, "Route number is required", errs["route"])
	assert.Equal(t, "Driver is required", errs["driver"])
	assert.Equal(t, "At least one crew member", errs["crew"])
	assert.Equal(t, "At least one area", errs["areas"])
	assert.Equal(t, "Collection start time is required", errs["time"])
	assert.Equal(t, "Collection end time is required", errs["endTime"])
	assert.Equal(t, "Waste type is required", errs["type"])
	assert.Equal(t, "Frequency is required", errs["frequency"])
	assert.Equal(t, "Day off is required", errs["dayOff"])
}

func TestValidate_BlankEntriesDontCount(t *testing.T) {
	form := validForm()
	form.Crew = []string{"", "  "}
	form.Areas = []string{"   "}
	errs := Validate(form)
	assert.Equal(t, "At least one crew member", errs["crew"])
	assert.Equal(t, "At least one area", errs["areas"])
}

func TestValidate_MorningStartMustEndAfternoon(t *testing.T) {
	form := validForm()
	form.Time = "07:00"
	form.EndTime = "10:00"
	errs := Validate(form)
	assert.Equal(t, "End time must be in the afternoon", errs["endTime"])

	form.EndTime = "14:00"
	assert.Empty(t, Validate(form))
}

func TestValidate_EndMustBeAfterStart(t *testing.T) {
	form := validForm()
	form.Time = "14:00"
	form.EndTime = "13:00"
	errs := Validate(form)
	assert.Equal(t, "End time must be after start time", errs["endTime"])

	// Equal times are rejected too.
	form.EndTime = "14:00"
	errs = Validate(form)
	assert.Equal(t, "End time must be after start time", errs["endTime"])

	form.EndTime = "14:01"
	assert.Empty(t, Validate(form))
}

func TestValidate_UnknownEnums(t *testing.T) {
	form := validForm()
	form.Route = "9"
	form.Type = "Organic"
	form.Frequency = "Fortnightly"
	form.DayOff = "Monday"
	errs := Validate(form)
	assert.Equal(t, "Unknown route number", errs["route"])
	assert.Equal(t, "Unknown waste type", errs["type"])
	assert.Equal(t, "Unknown frequency", errs["frequency"])
	assert.Equal(t, "Unknown day off", errs["dayOff"])
}

func TestValidateAt_PastDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	form := validForm()
	form.Date = "2025-06-14"
	errs := ValidateAt(form, now)
	assert.Equal(t, "Cannot add a schedule for a past date.", errs["date"])

	// Today and future are fine.
	form.Date = "2025-06-15"
	assert.Empty(t, ValidateAt(form, now))
	form.Date = "2025-07-01"
	assert.Empty(t, ValidateAt(form, now))
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	form := validForm()
	form.Crew = []string{"Joey Cantay", ""}
	Validate(form)
	assert.Equal(t, []string{"Joey Cantay", ""}, form.Crew)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"07:30", 450, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseClock(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.minutes, got, tt.in)
		}
	}
}
