package reference

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    Ref
		wantErr bool
	}{
		{name: "nil", raw: nil, want: Null()},
		{name: "none sentinel", raw: "none", want: Null()},
		{name: "none uppercase", raw: " NONE ", want: Null()},
		{name: "empty string", raw: "", want: Null()},
		{name: "null string", raw: "null", want: Null()},
		{name: "numeric string", raw: "5", want: ID(5)},
		{name: "int", raw: 7, want: ID(7)},
		{name: "float64 integral", raw: float64(12), want: ID(12)},
		{name: "json number", raw: json.Number("42"), want: ID(42)},
		{name: "non numeric string", raw: "abc", wantErr: true},
		{name: "zero", raw: 0, wantErr: true},
		{name: "negative string", raw: "-3", wantErr: true},
		{name: "fraction", raw: 1.5, wantErr: true},
		{name: "bool", raw: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefJSON(t *testing.T) {
	var payload struct {
		AgentID   Ref `json:"agentId"`
		StudentID Ref `json:"studentId"`
		ProgramID Ref `json:"programId"`
	}
	err := json.Unmarshal([]byte(`{"agentId":"none","studentId":"5","programId":9}`), &payload)
	require.NoError(t, err)

	assert.True(t, payload.AgentID.IsNull())
	assert.Nil(t, payload.AgentID.Ptr())

	id, ok := payload.StudentID.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, int64(9), *payload.ProgramID.Ptr())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"agentId":null,"studentId":5,"programId":9}`, string(out))
}

func TestRefJSONRejectsGarbage(t *testing.T) {
	var payload struct {
		AgentID Ref `json:"agentId"`
	}
	err := json.Unmarshal([]byte(`{"agentId":"agent-7"}`), &payload)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestOptionalTracksPresence(t *testing.T) {
	var patch struct {
		AgentID      Optional `json:"agentId"`
		UniversityID Optional `json:"universityId"`
		ProgramID    Optional `json:"programId"`
	}
	err := json.Unmarshal([]byte(`{"agentId":null,"universityId":"3"}`), &patch)
	require.NoError(t, err)

	require.NotNil(t, patch.AgentID.Patch())
	assert.True(t, patch.AgentID.Patch().IsNull())

	require.NotNil(t, patch.UniversityID.Patch())
	assert.Equal(t, int64(3), *patch.UniversityID.Patch().Ptr())

	assert.Nil(t, patch.ProgramID.Patch())
}
