package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intered/portal/internal/app/models"
)

func TestCreateStudentRequestNormalizesReferences(t *testing.T) {
	var req CreateStudentRequest
	body := `{"firstName":"Ada","agentId":"none","universityId":"4","programId":7,"dateOfBirth":"2001-05-17"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	s := req.ToModel()
	assert.Nil(t, s.AgentID)
	require.NotNil(t, s.UniversityID)
	assert.Equal(t, int64(4), *s.UniversityID)
	require.NotNil(t, s.ProgramID)
	assert.Equal(t, int64(7), *s.ProgramID)
	require.NotNil(t, s.DateOfBirth)
	assert.Equal(t, time.Date(2001, 5, 17, 0, 0, 0, 0, time.UTC), *s.DateOfBirth)
	assert.Equal(t, models.StudentStageInquiry, s.Stage)
	assert.Equal(t, models.StatusActive, s.Status)
}

func TestUpdateStudentRequestDistinguishesAbsentFromCleared(t *testing.T) {
	var req UpdateStudentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"agentId":null,"programId":"12"}`), &req))

	patch := req.ToPatch()
	require.NotNil(t, patch.AgentID)
	assert.True(t, patch.AgentID.IsNull())
	require.NotNil(t, patch.ProgramID)
	id, ok := patch.ProgramID.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)
	assert.Nil(t, patch.UniversityID)
	assert.Nil(t, patch.FirstName)
}

func TestCreateApplicationRequestReadsStringIDs(t *testing.T) {
	var req CreateApplicationRequest
	body := `{"studentId":"5","universityId":2,"programId":"3","agentId":"none"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	now := time.Date(2025, 2, 1, 15, 4, 5, 0, time.UTC)
	a := req.ToModel(now)
	assert.Equal(t, int64(5), a.StudentID)
	assert.Equal(t, int64(2), a.UniversityID)
	assert.Equal(t, int64(3), a.ProgramID)
	assert.Nil(t, a.AgentID)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), a.ApplicationDate)
	assert.Equal(t, models.ApplicationStageDocumentCollection, a.Stage)
	assert.Equal(t, models.ApplicationInProgress, a.Status)
}

func TestUpdateApplicationRequestRejectsClearingRequiredReference(t *testing.T) {
	var req UpdateApplicationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"studentId":"none"}`), &req))
	_, field := req.ToPatch()
	assert.Equal(t, "studentId", field)

	req = UpdateApplicationRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"programId":"9","agentId":"none"}`), &req))
	patch, field := req.ToPatch()
	assert.Empty(t, field)
	assert.Equal(t, int64(9), *patch.ProgramID)
	assert.Nil(t, patch.StudentID)
	assert.True(t, patch.AgentID.IsNull())
}

func TestInvalidReferenceFailsDecoding(t *testing.T) {
	var req CreateApplicationRequest
	assert.Error(t, json.Unmarshal([]byte(`{"studentId":"abc"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"studentId":-3}`), &req))
}

func TestDateAcceptsBothLayouts(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-09-01"`), &d))
	assert.Equal(t, 2024, d.Year())

	require.NoError(t, json.Unmarshal([]byte(`"2024-09-01T10:00:00Z"`), &d))
	assert.Equal(t, 10, d.Hour())

	assert.Error(t, json.Unmarshal([]byte(`"01/09/2024"`), &d))

	var missing *Date
	assert.Nil(t, missing.Ptr())
}

func TestNewUserResponseOmitsPassword(t *testing.T) {
	resp := NewUserResponse(&models.User{ID: 1, Username: "jdoe", Password: "$2a$12$hash", Role: models.RoleStaff})
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")
	assert.Nil(t, NewUserResponse(nil))
}

func TestUpdateRequestsClearDatesOnExplicitNull(t *testing.T) {
	var student UpdateStudentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dateOfBirth":null}`), &student))
	patch := student.ToPatch()
	require.NotNil(t, patch.DateOfBirth, "a null key is still a change")
	assert.Nil(t, patch.DateOfBirth.Value)

	student = UpdateStudentRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"notes":"x"}`), &student))
	assert.Nil(t, student.ToPatch().DateOfBirth)

	var uni UpdateUniversityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"agreementExpiry":null,"agreementDate":"2024-01-15"}`), &uni))
	uniPatch := uni.ToPatch()
	require.NotNil(t, uniPatch.AgreementExpiry)
	assert.Nil(t, uniPatch.AgreementExpiry.Value)
	require.NotNil(t, uniPatch.AgreementDate)
	require.NotNil(t, uniPatch.AgreementDate.Value)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *uniPatch.AgreementDate.Value)

	var prog UpdateProgramRequest
	require.NoError(t, json.Unmarshal([]byte(`{"startDate":null}`), &prog))
	progPatch, field := prog.ToPatch()
	assert.Empty(t, field)
	require.NotNil(t, progPatch.StartDate)
	assert.Nil(t, progPatch.StartDate.Value)
}

func TestUpdateApplicationRequestDates(t *testing.T) {
	var req UpdateApplicationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"decisionDate":null,"intakeDate":"2025-09-22"}`), &req))
	patch, field := req.ToPatch()
	assert.Empty(t, field)
	require.NotNil(t, patch.DecisionDate)
	assert.Nil(t, patch.DecisionDate.Value)
	require.NotNil(t, patch.IntakeDate)
	require.NotNil(t, patch.IntakeDate.Value)
	assert.Equal(t, 2025, patch.IntakeDate.Value.Year())
	assert.Nil(t, patch.ApplicationDate)

	req = UpdateApplicationRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"applicationDate":null}`), &req))
	_, field = req.ToPatch()
	assert.Equal(t, "applicationDate", field)
}
