package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/intered/portal/internal/app/auth"
	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/repositories/memory"
	"github.com/intered/portal/internal/pkg/apperrors"
	"github.com/intered/portal/internal/pkg/auth"
	"github.com/intered/portal/internal/pkg/reference"
	"github.com/intered/portal/internal/pkg/session"
)

func ptr[T any](v T) *T { return &v }

func newAuthService(store *memory.Store) *AuthService {
	sessions := appAuth.NewSessionManager(session.NewMemoryStore(), store, time.Hour)
	return NewAuthService(store, auth.NewPasswordHasher(auth.MinBcryptCost), sessions, appAuth.NewAuthorizationService(), nil, zerolog.Nop())
}

func registerReq(username string) *dto.RegisterRequest {
	return &dto.RegisterRequest{Username: username, Password: "correct-horse", FullName: "John Doe", Email: "john@intered.example"}
}

func TestRegisterStoresHashAndRejectsDuplicates(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, nil, registerReq("jdoe"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.NotEqual(t, "correct-horse", user.Password)

	_, err = svc.Register(ctx, nil, registerReq("jdoe"))
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestRegisterRoleEscalation(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	req := registerReq("eve")
	req.Role = models.RoleAdmin
	user, err := svc.Register(ctx, nil, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role, "anonymous callers never get admin")

	req = registerReq("mallory")
	req.Role = models.RoleAdmin
	_, err = svc.Register(ctx, user, req)
	assert.ErrorIs(t, err, apperrors.ErrRoleNotAssignable)

	admin := &models.User{ID: 99, Role: models.RoleAdmin}
	req = registerReq("carol")
	req.Role = models.RoleCounselor
	created, err := svc.Register(ctx, admin, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCounselor, created.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, nil, registerReq("jdoe"))
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, &dto.LoginRequest{Username: "jdoe", Password: "correct-horsf"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)

	_, _, errUnknown := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "correct-horse"})
	assert.Equal(t, err, errUnknown)

	user, token, err = svc.Login(ctx, &dto.LoginRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	principal, err := svc.ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID)

	require.NoError(t, svc.Logout(ctx, token))
	principal, err = svc.ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestIssueTokenRoundTrip(t *testing.T) {
	store := memory.NewStore()
	sessions := appAuth.NewSessionManager(session.NewMemoryStore(), store, time.Hour)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	svc := NewAuthService(store, auth.NewPasswordHasher(auth.MinBcryptCost), sessions, appAuth.NewAuthorizationService(), jwtService, zerolog.Nop())
	ctx := context.Background()

	user, err := svc.Register(ctx, nil, registerReq("jdoe"))
	require.NoError(t, err)

	tok, err := svc.IssueToken(ctx, &dto.LoginRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)

	principal, err := svc.ResolveAccessToken(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID)

	_, err = svc.ResolveAccessToken(ctx, "garbage")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestUserServiceCannotDeleteSelf(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store, auth.NewPasswordHasher(auth.MinBcryptCost), zerolog.Nop())
	ctx := context.Background()

	admin, err := store.CreateUser(ctx, &models.User{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, admin.ID), apperrors.ErrCannotDeleteSelf)
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, admin.ID+1), apperrors.ErrResourceNotFound)

	updated, err := svc.UpdateUser(ctx, admin, admin.ID, &dto.UpdateUserRequest{Password: ptr("new-password")})
	require.NoError(t, err)
	assert.NotEqual(t, "new-password", updated.Password)
}

func TestUserServiceCannotChangeOwnRole(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store, auth.NewPasswordHasher(auth.MinBcryptCost), zerolog.Nop())
	ctx := context.Background()

	admin, err := store.CreateUser(ctx, &models.User{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	other, err := store.CreateUser(ctx, &models.User{Username: "jdoe", Role: models.RoleStaff})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, admin, admin.ID, &dto.UpdateUserRequest{Role: ptr(models.RoleStaff)})
	assert.ErrorIs(t, err, apperrors.ErrCannotChangeRole)

	unchanged, err := store.GetUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, unchanged.Role)

	same, err := svc.UpdateUser(ctx, admin, admin.ID, &dto.UpdateUserRequest{Role: ptr(models.RoleAdmin), FullName: ptr("Root")})
	require.NoError(t, err, "restating the current role is allowed")
	assert.Equal(t, "Root", same.FullName)

	promoted, err := svc.UpdateUser(ctx, admin, other.ID, &dto.UpdateUserRequest{Role: ptr(models.RoleCounselor)})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCounselor, promoted.Role)
}

// catalog seeds one university with one program and one agent.
func catalog(t *testing.T, store *memory.Store) (*models.University, *models.Program, *models.Agent) {
	t.Helper()
	ctx := context.Background()
	uni, err := store.CreateUniversity(ctx, &models.University{Name: "University of Leeds"})
	require.NoError(t, err)
	prog, err := store.CreateProgram(ctx, &models.Program{Name: "MSc Data Science", UniversityID: uni.ID})
	require.NoError(t, err)
	agent, err := store.CreateAgent(ctx, &models.Agent{Name: "Priya Shah"})
	require.NoError(t, err)
	return uni, prog, agent
}

func TestStudentReferencesMustExist(t *testing.T) {
	store := memory.NewStore()
	svc := NewStudentService(store, zerolog.Nop())
	ctx := context.Background()
	uni, prog, agent := catalog(t, store)

	_, err := svc.CreateStudent(ctx, &models.Student{FirstName: "Ada", AgentID: ptr(agent.ID + 50)})
	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "agentId", custom.Field)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	student, err := svc.CreateStudent(ctx, &models.Student{
		FirstName: "Ada", LastName: "Lovelace", AgentID: ptr(agent.ID), UniversityID: ptr(uni.ID), ProgramID: ptr(prog.ID),
	})
	require.NoError(t, err)

	details, err := svc.GetStudentDetails(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Priya Shah", *details.AgentName)
	assert.Equal(t, "University of Leeds", *details.UniversityName)
	assert.Equal(t, "MSc Data Science", *details.ProgramName)

	cleared := reference.Null()
	updated, err := svc.UpdateStudent(ctx, student.ID, models.StudentPatch{AgentID: &cleared})
	require.NoError(t, err)
	assert.Nil(t, updated.AgentID)

	_, err = svc.GetStudent(ctx, student.ID+10)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.StudentsByStage(ctx, models.StudentStage("graduated"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestProgramMustBelongToUniversity(t *testing.T) {
	store := memory.NewStore()
	svc := NewApplicationService(store, zerolog.Nop())
	ctx := context.Background()
	_, prog, _ := catalog(t, store)

	other, err := store.CreateUniversity(ctx, &models.University{Name: "University of York"})
	require.NoError(t, err)
	student, err := store.CreateStudent(ctx, &models.Student{FirstName: "Ada"})
	require.NoError(t, err)

	_, err = svc.CreateApplication(ctx, &models.Application{StudentID: student.ID, UniversityID: other.ID, ProgramID: prog.ID})
	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "programId", custom.Field)
}

// countingStore counts university reads and can simulate a dangling agent
// or a failing program lookup.
type countingStore struct {
	*memory.Store
	universityReads int
	hideAgents      bool
	programErr      error
}

func (c *countingStore) GetUniversity(ctx context.Context, id int64) (*models.University, error) {
	c.universityReads++
	return c.Store.GetUniversity(ctx, id)
}

func (c *countingStore) GetAgent(ctx context.Context, id int64) (*models.Agent, error) {
	if c.hideAgents {
		return nil, nil
	}
	return c.Store.GetAgent(ctx, id)
}

func (c *countingStore) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	if c.programErr != nil {
		return nil, c.programErr
	}
	return c.Store.GetProgram(ctx, id)
}

func TestListByStudentEnrichment(t *testing.T) {
	base := memory.NewStore()
	ctx := context.Background()
	uni, prog, agent := catalog(t, base)
	student, err := base.CreateStudent(ctx, &models.Student{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := base.CreateApplication(ctx, &models.Application{
			StudentID: student.ID, UniversityID: uni.ID, ProgramID: prog.ID, AgentID: ptr(agent.ID),
			Stage: models.ApplicationStageUnderReview,
		})
		require.NoError(t, err)
	}

	store := &countingStore{Store: base}
	svc := NewApplicationService(store, zerolog.Nop())

	list, err := svc.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 1, store.universityReads, "one read per distinct university")
	assert.Equal(t, "Ada Lovelace", *list[0].StudentName)
	assert.Equal(t, "Priya Shah", *list[2].AgentName)

	store.hideAgents = true
	list, err = svc.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Nil(t, list[0].AgentName, "dangling reference yields a null name")

	store.programErr = errors.New("connection reset")
	_, err = svc.ListByStudent(ctx, student.ID)
	assert.Error(t, err)

	store.programErr = nil
	empty, err := svc.ListByStudent(ctx, student.ID+100)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUpdateApplicationChecksMergedState(t *testing.T) {
	store := memory.NewStore()
	svc := NewApplicationService(store, zerolog.Nop())
	ctx := context.Background()
	uni, prog, _ := catalog(t, store)
	student, err := store.CreateStudent(ctx, &models.Student{FirstName: "Ada"})
	require.NoError(t, err)

	applied := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	app, err := svc.CreateApplication(ctx, &models.Application{
		StudentID: student.ID, UniversityID: uni.ID, ProgramID: prog.ID, ApplicationDate: applied,
	})
	require.NoError(t, err)

	_, err = svc.UpdateApplication(ctx, app.ID, models.ApplicationPatch{DecisionDate: models.SetDate(applied.AddDate(0, 0, -1))})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	stage := models.ApplicationStageConditionalOffer
	updated, err := svc.UpdateApplication(ctx, app.ID, models.ApplicationPatch{Stage: &stage})
	require.NoError(t, err)
	assert.Equal(t, stage, updated.Stage)

	_, err = svc.UpdateApplication(ctx, app.ID+1, models.ApplicationPatch{Stage: &stage})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStatsSummary(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uni, prog, _ := catalog(t, store)
	student, err := store.CreateStudent(ctx, &models.Student{FirstName: "Ada", Stage: models.StudentStageVisa, IsHighPriority: true})
	require.NoError(t, err)
	_, err = store.CreateApplication(ctx, &models.Application{StudentID: student.ID, UniversityID: uni.ID, ProgramID: prog.ID, Stage: models.ApplicationStageRejected})
	require.NoError(t, err)

	svc := NewStatsService(store)
	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.SummaryResponse{Students: 1, HighPriorityStudents: 1, Universities: 1, Programs: 1, Agents: 1, Applications: 1}, *summary)

	counts, err := svc.StudentStageCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.StudentStage]int{models.StudentStageVisa: 1}, counts)
}
