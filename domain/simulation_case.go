package domain

import (
	"time"

	"github.com/fundwit/go-commons/types"
)

const DefaultPageSize = 20
const MaxPageSize = 100

// SimulationCase is a simulation case metadata record.
// Rows are never physically removed: deletion flips IsDeleted and stamps
// DeletedTime. Live rows keep the zero DeletedTime, so the composite unique
// index (name, deleted_time) enforces name uniqueness among live rows only.
type SimulationCase struct {
	ID          types.ID         `json:"id" gorm:"primary_key"`
	Name        string           `json:"name" gorm:"size:100;unique_index:uni_case_name_deleted"`
	Type        SimulationType   `json:"type" gorm:"index"`
	WorkingPath string           `json:"workingPath" gorm:"size:500"`
	Status      SimulationStatus `json:"status" gorm:"index"`
	Description string           `json:"description" gorm:"size:1000"`
	CreatedBy   string           `json:"createdBy" gorm:"size:50;index"`

	CreatedTime      types.Timestamp `json:"createdTime" gorm:"index" sql:"type:DATETIME(6) NOT NULL"`
	LastModifiedTime types.Timestamp `json:"lastModifiedTime" sql:"type:DATETIME(6)"`

	Version int `json:"version"`

	IsDeleted   bool            `json:"-" gorm:"index"`
	DeletedTime types.Timestamp `json:"-" gorm:"unique_index:uni_case_name_deleted" sql:"type:DATETIME(6) NOT NULL"`
}

func (r *SimulationCase) TableName() string {
	return "simulation_cases"
}

type CaseCreation struct {
	Name        string         `json:"name" binding:"required,lte=100"`
	Type        SimulationType `json:"type" binding:"required,oneof=1 2 3"`
	WorkingPath string         `json:"workingPath" binding:"required,lte=500"`
	Description string         `json:"description" binding:"omitempty,lte=1000"`
}

type CaseUpdating struct {
	Name        string         `json:"name" binding:"required,lte=100"`
	Type        SimulationType `json:"type" binding:"required,oneof=1 2 3"`
	WorkingPath string         `json:"workingPath" binding:"required,lte=500"`
	Description string         `json:"description" binding:"omitempty,lte=1000"`
}

type CaseStatusUpdating struct {
	Status *SimulationStatus `json:"status" binding:"required,oneof=0 1 2 3 4 5"`
}

type CaseSelection struct {
	CaseIdList []types.ID `json:"caseIdList" binding:"required"`
}

type CaseExistenceQuery struct {
	Name      string   `form:"name" binding:"required,lte=100"`
	ExcludeId types.ID `form:"excludeId"`
}

// CasePagedRequest carries the conjunctive filters of the paged query.
// Type and Status are pointers because zero is a meaningful status value.
type CasePagedRequest struct {
	PageNumber int `json:"pageNumber" form:"pageNumber"`
	PageSize   int `json:"pageSize" form:"pageSize"`

	Keyword   string            `json:"keyword" form:"keyword"`
	Type      *SimulationType   `json:"type" form:"type"`
	Status    *SimulationStatus `json:"status" form:"status"`
	CreatedBy string            `json:"createdBy" form:"createdBy"`
	StartDate time.Time         `json:"startDate" form:"startDate" time_format:"2006-01-02"`
	EndDate   time.Time         `json:"endDate" form:"endDate" time_format:"2006-01-02"`
}

// Normalized clamps paging values into the supported range.
func (q CasePagedRequest) Normalized() CasePagedRequest {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}
