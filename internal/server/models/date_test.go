package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-12-31"`), &d))
	assert.Equal(t, NewDate(2023, time.December, 31), d)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-12-31"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"31/12/2023"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20231231`), &d))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Date
		wantErr bool
	}{
		{name: "time", src: time.Date(2024, 5, 6, 0, 0, 0, 0, time.Local), want: NewDate(2024, 5, 6)},
		{name: "string", src: "2024-05-06", want: NewDate(2024, 5, 6)},
		{name: "bytes", src: []byte("2024-05-06"), want: NewDate(2024, 5, 6)},
		{name: "nil", src: nil, want: Date{}},
		{name: "bad string", src: "May 6", wantErr: true},
		{name: "bad type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, time.February, 29).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", v)
}
