package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskStatusRequestCompleted(t *testing.T) {
	tests := []struct {
		body   string
		want   bool
		wantOK bool
	}{
		{`{"is_completed": true}`, true, true},
		{`{"is_completed":false}`, false, true},
		{`{"is_completed": "true"}`, false, false},
		{`{"is_completed": 1}`, false, false},
		{`{"is_completed": null}`, false, false},
		{`{}`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req UpdateTaskStatusRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			got, ok := req.Completed()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateTaskRequestDistinguishesMissingUserID(t *testing.T) {
	var req CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Buy milk"}`), &req))
	assert.Nil(t, req.UserID)
	assert.Nil(t, req.Description)

	require.NoError(t, json.Unmarshal([]byte(`{"title":"Buy milk","user_id":7,"description":"2L"}`), &req))
	require.NotNil(t, req.UserID)
	assert.Equal(t, int64(7), *req.UserID)
	assert.Equal(t, "2L", *req.Description)
}
