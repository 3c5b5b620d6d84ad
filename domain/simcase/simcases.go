package simcase

import (
	"avda/bizerror"
	"avda/domain"
	"avda/domain/casestore"
	"avda/misc"
	"avda/session"
	"errors"
	"os"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var (
	CreateCaseFunc         = CreateCase
	UpdateCaseFunc         = UpdateCase
	DeleteCaseFunc         = DeleteCase
	BatchDeleteCasesFunc   = BatchDeleteCases
	CaseExistsFunc         = CaseExists
	UpdateCaseStatusFunc   = UpdateCaseStatus
	DetailCaseFunc         = DetailCase
	QueryCasesFunc         = QueryCases
	StatusCountsByUserFunc = StatusCountsByUser
	TypeDistributionFunc   = TypeDistribution
	ensureWorkingDirFunc   = ensureWorkingDir
)

// SimulationCaseDetail is the presentation view of a case: the record plus
// resolved display names for its enums.
type SimulationCaseDetail struct {
	domain.SimulationCase

	TypeDisplayName   string `json:"typeDisplayName"`
	StatusDisplayName string `json:"statusDisplayName"`
}

func toDetail(record domain.SimulationCase) SimulationCaseDetail {
	return SimulationCaseDetail{
		SimulationCase:    record,
		TypeDisplayName:   record.Type.DisplayName(),
		StatusDisplayName: record.Status.DisplayName(),
	}
}

// CreateCase checks name uniqueness, makes sure the working directory
// exists, then persists a record owned by the session operator with status
// NotCalculated and version 1.
func CreateCase(c *domain.CaseCreation, sec *session.Session) (*SimulationCaseDetail, error) {
	exists, err := casestore.ExistsByNameFunc(sec.Context, c.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, bizerror.ErrNameConflict
	}

	if err := ensureWorkingDirFunc(c.WorkingPath); err != nil {
		return nil, err
	}

	record := domain.SimulationCase{
		Name:        c.Name,
		Type:        c.Type,
		WorkingPath: c.WorkingPath,
		Description: c.Description,
		Status:      domain.StatusNotCalculated,
		CreatedBy:   sec.Identity.Name,
		CreatedTime: types.CurrentTimestamp(),
		Version:     1,
	}
	if err := casestore.CreateCaseFunc(sec.Context, &record); err != nil {
		return nil, err
	}

	detail := toDetail(record)
	return &detail, nil
}

// UpdateCase replaces name, type, working path and description of one case
// and bumps its version by one. Returns false when the case is absent or
// deleted. Concurrent updates are last-write-wins: the stored version is
// incremented, never compared against the caller's copy.
func UpdateCase(id types.ID, u *domain.CaseUpdating, sec *session.Session) (bool, error) {
	record, err := casestore.GetByIdFunc(sec.Context, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	exists, err := casestore.ExistsByNameFunc(sec.Context, u.Name, id)
	if err != nil {
		return false, err
	}
	if exists {
		return false, bizerror.ErrNameConflict
	}

	if err := ensureWorkingDirFunc(u.WorkingPath); err != nil {
		return false, err
	}

	record.Name = u.Name
	record.Type = u.Type
	record.WorkingPath = u.WorkingPath
	record.Description = u.Description
	record.Version = record.Version + 1

	return casestore.UpdateCaseFunc(sec.Context, record)
}

func DeleteCase(id types.ID, sec *session.Session) (bool, error) {
	return casestore.DeleteCaseFunc(sec.Context, id)
}

// BatchDeleteCases deletes every live case of ids and reports how many were
// actually deleted. An empty selection is a no-op answered locally.
func BatchDeleteCases(ids []types.ID, sec *session.Session) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return casestore.BatchDeleteCasesFunc(sec.Context, ids)
}

func CaseExists(name string, excludeId types.ID, sec *session.Session) (bool, error) {
	return casestore.ExistsByNameFunc(sec.Context, name, excludeId)
}

// UpdateCaseStatus accepts any status transition. The computation driver is
// trusted; there is no state machine here.
func UpdateCaseStatus(id types.ID, status domain.SimulationStatus, sec *session.Session) (bool, error) {
	return casestore.UpdateCaseStatusFunc(sec.Context, id, status)
}

func DetailCase(id types.ID, sec *session.Session) (*SimulationCaseDetail, error) {
	record, err := casestore.GetByIdFunc(sec.Context, id)
	if err != nil {
		return nil, err
	}
	detail := toDetail(*record)
	return &detail, nil
}

func QueryCases(query *domain.CasePagedRequest, sec *session.Session) (*misc.PagedResult[SimulationCaseDetail], error) {
	page, err := casestore.GetPagedListFunc(sec.Context, query)
	if err != nil {
		return nil, err
	}
	details := make([]SimulationCaseDetail, 0, len(page.Items))
	for _, record := range page.Items {
		details = append(details, toDetail(record))
	}
	return &misc.PagedResult[SimulationCaseDetail]{Items: details, TotalCount: page.TotalCount,
		PageNumber: page.PageNumber, PageSize: page.PageSize, TotalPages: page.TotalPages}, nil
}

func StatusCountsByUser(createdBy string, sec *session.Session) (map[domain.SimulationStatus]int, error) {
	return casestore.StatusCountsByUserFunc(sec.Context, createdBy)
}

func TypeDistribution(sec *session.Session) (map[domain.SimulationType]int, error) {
	return casestore.TypeDistributionFunc(sec.Context)
}

// ensureWorkingDir verifies the working path is an existing directory,
// creating it when absent. The first failure propagates; a directory created
// for a record whose insert later fails is left behind.
func ensureWorkingDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return &bizerror.ErrWorkingPathUnavailable{Path: path, Cause: errors.New("path exists and is not a directory")}
	}
	if !os.IsNotExist(err) {
		return &bizerror.ErrWorkingPathUnavailable{Path: path, Cause: err}
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return &bizerror.ErrWorkingPathUnavailable{Path: path, Cause: err}
	}
	logrus.Infof("working directory created: %s", path)
	return nil
}
