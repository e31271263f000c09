package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name     string
		dataType SettingDataType
		raw      interface{}
		want     interface{}
		wantErr  bool
	}{
		{name: "string ok", dataType: DataTypeString, raw: "09:00-18:00", want: "09:00-18:00"},
		{name: "string rejects number", dataType: DataTypeString, raw: 60, wantErr: true},

		{name: "number from int", dataType: DataTypeNumber, raw: 60, want: 60},
		{name: "number from float64", dataType: DataTypeNumber, raw: float64(90), want: 90},
		{name: "number truncates fraction", dataType: DataTypeNumber, raw: 90.7, want: 90},
		{name: "number from json.Number", dataType: DataTypeNumber, raw: json.Number("45"), want: 45},
		{name: "number from string", dataType: DataTypeNumber, raw: "120", want: 120},
		{name: "number rejects text", dataType: DataTypeNumber, raw: "sesenta", wantErr: true},
		{name: "number rejects bool", dataType: DataTypeNumber, raw: true, wantErr: true},

		{name: "boolean ok", dataType: DataTypeBoolean, raw: true, want: true},
		{name: "boolean rejects string", dataType: DataTypeBoolean, raw: "true", wantErr: true},

		{name: "object from map", dataType: DataTypeObject, raw: map[string]interface{}{"a": 1}, want: map[string]interface{}{"a": 1}},
		{name: "object from slice", dataType: DataTypeObject, raw: []interface{}{"a"}, want: []interface{}{"a"}},
		{name: "object rejects scalar", dataType: DataTypeObject, raw: "a", wantErr: true},

		{name: "unknown type", dataType: SettingDataType("date"), raw: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceValue(tt.dataType, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetting_IntValue(t *testing.T) {
	s := &Setting{Code: "shiftDuration", Value: float64(60)}
	v, err := s.IntValue()
	require.NoError(t, err)
	assert.Equal(t, 60, v)

	s.Value = "60"
	_, err = s.IntValue()
	assert.Error(t, err)
}

func TestSetting_StringValue(t *testing.T) {
	s := &Setting{Code: "scheduleDayMonday", Value: "09:00-18:00"}
	v, err := s.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "09:00-18:00", v)

	s.Value = 9
	_, err = s.StringValue()
	assert.Error(t, err)
}

func TestSetting_BoolValue(t *testing.T) {
	s := &Setting{Code: "validateShiftUpdates", Value: true}
	v, err := s.BoolValue()
	require.NoError(t, err)
	assert.True(t, v)

	s.Value = "true"
	_, err = s.BoolValue()
	assert.Error(t, err)
}
