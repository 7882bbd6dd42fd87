package repositories

import (
	"context"

	"github.com/intered/portal/internal/app/models"
)

// Get and Update methods return (nil, nil) when no row matches, including for
// non-positive ids. Delete methods report whether a row was removed.

// UserStore persists users.
type UserStore interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// StudentStore persists students.
type StudentStore interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (bool, error)
	StudentsByStage(ctx context.Context, stage models.StudentStage) ([]*models.Student, error)
	CountStudentsByStage(ctx context.Context) (map[models.StudentStage]int, error)
}

// UniversityStore persists universities.
type UniversityStore interface {
	ListUniversities(ctx context.Context) ([]*models.University, error)
	GetUniversity(ctx context.Context, id int64) (*models.University, error)
	CreateUniversity(ctx context.Context, university *models.University) (*models.University, error)
	UpdateUniversity(ctx context.Context, id int64, patch models.UniversityPatch) (*models.University, error)
	DeleteUniversity(ctx context.Context, id int64) (bool, error)
}

// ProgramStore persists programs.
type ProgramStore interface {
	ListPrograms(ctx context.Context) ([]*models.Program, error)
	GetProgram(ctx context.Context, id int64) (*models.Program, error)
	CreateProgram(ctx context.Context, program *models.Program) (*models.Program, error)
	UpdateProgram(ctx context.Context, id int64, patch models.ProgramPatch) (*models.Program, error)
	DeleteProgram(ctx context.Context, id int64) (bool, error)
	ProgramsByUniversity(ctx context.Context, universityID int64) ([]*models.Program, error)
}

// AgentStore persists agents.
type AgentStore interface {
	ListAgents(ctx context.Context) ([]*models.Agent, error)
	GetAgent(ctx context.Context, id int64) (*models.Agent, error)
	CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	UpdateAgent(ctx context.Context, id int64, patch models.AgentPatch) (*models.Agent, error)
	DeleteAgent(ctx context.Context, id int64) (bool, error)
}

// ApplicationStore persists applications.
type ApplicationStore interface {
	ListApplications(ctx context.Context) ([]*models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	CreateApplication(ctx context.Context, application *models.Application) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int64, patch models.ApplicationPatch) (*models.Application, error)
	DeleteApplication(ctx context.Context, id int64) (bool, error)
	ApplicationsByStage(ctx context.Context, stage models.ApplicationStage) ([]*models.Application, error)
	CountApplicationsByStage(ctx context.Context) (map[models.ApplicationStage]int, error)
	ApplicationsByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	ApplicationsByUniversity(ctx context.Context, universityID int64) ([]*models.Application, error)
	ApplicationsByProgram(ctx context.Context, programID int64) ([]*models.Application, error)
}

// Storage is the single gateway the services depend on.
type Storage interface {
	UserStore
	StudentStore
	UniversityStore
	ProgramStore
	AgentStore
	ApplicationStore
}
