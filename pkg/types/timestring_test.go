package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
		wantErr bool
	}{
		{name: "час без ведущего нуля", input: "9:00", minutes: 540},
		{name: "час с ведущим нулём", input: "09:00", minutes: 540},
		{name: "после полудня", input: "18:30", minutes: 1110},
		{name: "полночь", input: "0:00", minutes: 0},
		{name: "пробелы обрезаются", input: " 12:15 ", minutes: 735},
		{name: "без двоеточия", input: "1200", wantErr: true},
		{name: "лишние части", input: "12:00:00", wantErr: true},
		{name: "не числа", input: "ab:cd", wantErr: true},
		{name: "минуты вне диапазона", input: "12:60", wantErr: true},
		{name: "отрицательный час", input: "-1:00", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
		})
	}
}

func TestTimeString_LeadingZeroEquivalence(t *testing.T) {
	a, err := NewTimeStringFromString("9:00")
	require.NoError(t, err)
	b, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String())
}

func TestTimeString_String(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 540, want: "9:00"},
		{minutes: 545, want: "9:05"},
		{minutes: 1110, want: "18:30"},
		{minutes: 0, want: "0:00"},
		{minutes: 1470, want: "24:30"}, // конец смены может выйти за сутки
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromMinutes(tt.minutes).String())
	}

	assert.Equal(t, "", TimeString{}.String())
}

func TestTimeString_AddMinutes(t *testing.T) {
	start, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)

	end := start.AddMinutes(90)
	assert.Equal(t, "25:00", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
}

func TestTimeString_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(FromMinutes(540))
		require.NoError(t, err)
		assert.Equal(t, `"9:00"`, string(data))
	})

	t.Run("marshal zero", func(t *testing.T) {
		data, err := json.Marshal(TimeString{})
		require.NoError(t, err)
		assert.Equal(t, `""`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, json.Unmarshal([]byte(`"09:00"`), &ts))
		assert.Equal(t, 540, ts.Minutes())
	})

	t.Run("unmarshal empty", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
		assert.True(t, ts.IsZero())
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, json.Unmarshal([]byte(`"12-00"`), &ts))
	})
}

func TestTimeString_SQL(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		v, err := FromMinutes(540).Value()
		require.NoError(t, err)
		assert.Equal(t, "9:00", v)
	})

	t.Run("value zero is null", func(t *testing.T) {
		v, err := TimeString{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("scan string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("18:30"))
		assert.Equal(t, 1110, ts.Minutes())
	})

	t.Run("scan bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("9:05")))
		assert.Equal(t, "9:05", ts.String())
	})

	t.Run("scan nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("scan wrong type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})

	t.Run("round trip", func(t *testing.T) {
		orig, err := NewTimeStringFromString("09:00")
		require.NoError(t, err)

		v, err := orig.Value()
		require.NoError(t, err)

		var scanned TimeString
		require.NoError(t, scanned.Scan(v))
		assert.True(t, orig.Equal(scanned))
	})
}
