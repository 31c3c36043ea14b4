package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "invalid hour", input: "24:00", wantErr: true},
		{name: "invalid minutes", input: "12:60", wantErr: true},
		{name: "missing leading zero still parses", input: "8:00", want: "8:00"},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("14:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, minutes)

	_, err = TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(8 * 60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), ts)

	ts, err = NewTimeStringFromMinutes(23*60 + 59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)
}

func TestTimeString_AddHours(t *testing.T) {
	ts := TimeString("08:00")

	shifted, err := ts.AddHours(4)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), shifted)

	// Выход за границу суток не допускается
	_, err = TimeString("22:00").AddHours(3)
	assert.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("14:00").IsAfter("08:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:00").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 10, 14, 0, 0, 0, time.UTC), got)

	_, err = TimeString("bad").OnDate(date)
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	got := NewTimeString(time.Date(2025, 7, 10, 9, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), got)
}
