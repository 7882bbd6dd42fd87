package models

import "time"

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin     RoleType = "admin"
	RoleStaff     RoleType = "staff"
	RoleCounselor RoleType = "counselor"
)

// Valid reports whether r is a known role.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCounselor:
		return true
	}
	return false
}

// StudentStage is the pipeline position of a student.
type StudentStage string

const (
	StudentStageInquiry     StudentStage = "inquiry"
	StudentStageApplication StudentStage = "application"
	StudentStageOffer       StudentStage = "offer"
	StudentStageVisa        StudentStage = "visa"
	StudentStageEnrollment  StudentStage = "enrollment"
	StudentStageAlumni      StudentStage = "alumni"
)

// StudentStages lists every student stage in pipeline order.
var StudentStages = []StudentStage{
	StudentStageInquiry,
	StudentStageApplication,
	StudentStageOffer,
	StudentStageVisa,
	StudentStageEnrollment,
	StudentStageAlumni,
}

// Valid reports whether s is a known student stage.
func (s StudentStage) Valid() bool {
	for _, stage := range StudentStages {
		if s == stage {
			return true
		}
	}
	return false
}

// ActivityStatus is shared by students and universities.
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "active"
	StatusInactive ActivityStatus = "inactive"
)

// UniversityTier ranks partner universities.
type UniversityTier string

const (
	Tier1 UniversityTier = "tier1"
	Tier2 UniversityTier = "tier2"
	Tier3 UniversityTier = "tier3"
	Tier4 UniversityTier = "tier4"
)

// AgreementStatus tracks the partnership agreement with a university.
type AgreementStatus string

const (
	AgreementNone    AgreementStatus = "none"
	AgreementPending AgreementStatus = "pending"
	AgreementActive  AgreementStatus = "active"
	AgreementExpired AgreementStatus = "expired"
	AgreementRenewal AgreementStatus = "renewal"
)

// ProgramLevel is the degree type of a program.
type ProgramLevel string

const (
	LevelFoundation  ProgramLevel = "foundation"
	LevelDiploma     ProgramLevel = "diploma"
	LevelBachelor    ProgramLevel = "bachelor"
	LevelMaster      ProgramLevel = "master"
	LevelPhD         ProgramLevel = "phd"
	LevelCertificate ProgramLevel = "certificate"
)

// AgentStatus is the lifecycle state of a recruitment agent.
type AgentStatus string

const (
	AgentActive    AgentStatus = "active"
	AgentInactive  AgentStatus = "inactive"
	AgentPending   AgentStatus = "pending"
	AgentSuspended AgentStatus = "suspended"
)

// ApplicationStage is the pipeline position of an application.
type ApplicationStage string

const (
	ApplicationStageDocumentCollection    ApplicationStage = "document_collection"
	ApplicationStageUnderReview           ApplicationStage = "under_review"
	ApplicationStageSubmittedToUniversity ApplicationStage = "submitted_to_university"
	ApplicationStageConditionalOffer      ApplicationStage = "conditional_offer"
	ApplicationStageUnconditionalOffer    ApplicationStage = "unconditional_offer"
	ApplicationStageRejected              ApplicationStage = "rejected"
)

// ApplicationStages lists every application stage in pipeline order.
var ApplicationStages = []ApplicationStage{
	ApplicationStageDocumentCollection,
	ApplicationStageUnderReview,
	ApplicationStageSubmittedToUniversity,
	ApplicationStageConditionalOffer,
	ApplicationStageUnconditionalOffer,
	ApplicationStageRejected,
}

// Valid reports whether s is a known application stage.
func (s ApplicationStage) Valid() bool {
	for _, stage := range ApplicationStages {
		if s == stage {
			return true
		}
	}
	return false
}

// ApplicationStatus is the outcome state of an application.
type ApplicationStatus string

const (
	ApplicationInProgress  ApplicationStatus = "in_progress"
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationDeferred    ApplicationStatus = "deferred"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

// NullableDate is a patch to a nullable date column. A nil Value clears the
// column; a nil *NullableDate leaves it untouched.
type NullableDate struct {
	Value *time.Time
}

// ClearDate is the patch value that sets a nullable date column to NULL.
func ClearDate() *NullableDate {
	return &NullableDate{}
}

// SetDate is the patch value that stores t.
func SetDate(t time.Time) *NullableDate {
	return &NullableDate{Value: &t}
}
