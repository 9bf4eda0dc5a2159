package storage

import (
	"testing"
	"time"

	"github.com/poiesic/peeq/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalPromptRecord(t *testing.T) {
	tests := []struct {
		name   string
		record core.PromptRecord
	}{
		{
			name: "active record",
			record: core.PromptRecord{
				Version:   1,
				Content:   "You are a helpful shopping assistant.",
				Active:    true,
				CreatedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "inactive record with multiline content",
			record: core.PromptRecord{
				Version:   42,
				Content:   "line one\nline two\n\ttabbed",
				Active:    false,
				CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalPromptRecord(&tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalPromptRecord(data)
			require.NoError(t, err)
			assert.Equal(t, tt.record, *decoded)
		})
	}
}

func TestUnmarshalPromptRecord_Invalid(t *testing.T) {
	_, err := UnmarshalPromptRecord([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalVersion(t *testing.T) {
	for _, version := range []int64{1, 7, 100000} {
		data := MarshalVersion(version)
		decoded, err := UnmarshalVersion(data)
		require.NoError(t, err)
		assert.Equal(t, version, decoded)
	}
}
