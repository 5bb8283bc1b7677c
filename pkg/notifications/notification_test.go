package notifications_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintryx/progressmaker/pkg/notifications"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    notifications.Type
		wantErr bool
	}{
		{in: "success", want: notifications.TypeSuccess},
		{in: "ERROR", want: notifications.TypeError},
		{in: " info ", want: notifications.TypeInfo},
		{in: "warning", want: notifications.TypeWarning},
		{in: "fatal", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := notifications.ParseType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, notifications.ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			text, err := got.MarshalText()
			require.NoError(t, err)
			var back notifications.Type
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, got, back)
		})
	}
}

func TestDefaultMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Action completed successfully.", notifications.DefaultMessage(notifications.TypeSuccess))
	assert.Equal(t, "An error occurred.", notifications.DefaultMessage(notifications.TypeError))
	assert.Equal(t, "Here is some information.", notifications.DefaultMessage(notifications.TypeInfo))
	assert.Equal(t, "Please review this warning.", notifications.DefaultMessage(notifications.TypeWarning))
	assert.Equal(t, "Here is some information.", notifications.DefaultMessage(0))
}

func TestDefaultNotifications(t *testing.T) {
	t.Parallel()

	assert.Equal(t, notifications.Options{
		Message:       "An error occurred.",
		Type:          notifications.TypeError,
		ActionLabel:   "OK",
		ClearExisting: true,
		Duration:      4 * time.Second,
	}, notifications.DefaultErrorNotification())

	success := notifications.DefaultSuccessNotification()
	assert.Equal(t, notifications.TypeSuccess, success.Type)
	assert.Equal(t, "Action completed successfully.", success.Message)
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	opts := notifications.NewOptions("Saved", 0,
		notifications.WithClearExisting(false),
		notifications.WithDuration(time.Second),
	)
	assert.Equal(t, notifications.Options{
		Message:       "Saved",
		Type:          notifications.TypeSuccess,
		ActionLabel:   "OK",
		ClearExisting: false,
		Duration:      time.Second,
	}, opts)
}

func TestOptionsJSON(t *testing.T) {
	t.Parallel()

	opts := notifications.NewOptions("Retry later", notifications.TypeWarning, notifications.WithActionLabel("Retry"))

	data, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"message": "Retry later",
		"type": "warning",
		"action_label": "Retry",
		"clear_existing": true,
		"duration": 4000
	}`, string(data))

	var decoded notifications.Options
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, opts, decoded)

	err = json.Unmarshal([]byte(`{"type":"loud"}`), &decoded)
	assert.ErrorIs(t, err, notifications.ErrInvalidType)
}
