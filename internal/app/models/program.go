package models

import "time"

// Program is a course of study offered by a university.
type Program struct {
	ID           int64        `json:"id" db:"id" example:"1"`
	Name         string       `json:"name" db:"name" example:"MSc Data Science"`
	Level        ProgramLevel `json:"level" db:"level" example:"master"`
	Duration     string       `json:"duration" db:"duration" example:"12 months"`
	TuitionFee   float64      `json:"tuitionFee" db:"tuition_fee" example:"24500"`
	Currency     string       `json:"currency" db:"currency" example:"GBP"`
	UniversityID int64        `json:"universityId" db:"university_id" example:"1"`
	StartDate    *time.Time   `json:"startDate" db:"start_date"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

// ProgramPatch is a partial update of a program.
type ProgramPatch struct {
	Name         *string
	Level        *ProgramLevel
	Duration     *string
	TuitionFee   *float64
	Currency     *string
	UniversityID *int64
	StartDate    *NullableDate
}
