package casestore

import (
	"avda/domain"
	"avda/idgen"
	"avda/misc"
	"avda/persistence"
	"context"
	"strings"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

var (
	caseIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	GetPagedListFunc       = GetPagedList
	GetByIdFunc            = GetById
	GetByNameFunc          = GetByName
	GetByIdsFunc           = GetByIds
	CreateCaseFunc         = CreateCase
	UpdateCaseFunc         = UpdateCase
	DeleteCaseFunc         = DeleteCase
	BatchDeleteCasesFunc   = BatchDeleteCases
	ExistsByNameFunc       = ExistsByName
	UpdateCaseStatusFunc   = UpdateCaseStatus
	StatusCountsByUserFunc = StatusCountsByUser
	TypeDistributionFunc   = TypeDistribution
)

// liveCases is the single place that excludes soft-deleted rows.
// Every read and every guarded write goes through it.
func liveCases(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// GetPagedList applies the conjunctive filters of query, counts the matches,
// then loads one page ordered by created_time DESC, id DESC.
func GetPagedList(ctx context.Context, query *domain.CasePagedRequest) (*misc.PagedResult[domain.SimulationCase], error) {
	q := query.Normalized()
	db := persistence.ActiveDataSourceManager.GormDB(ctx)

	search := db.Model(&domain.SimulationCase{}).Scopes(liveCases)
	if keyword := strings.ToLower(strings.TrimSpace(q.Keyword)); keyword != "" {
		pattern := "%" + keyword + "%"
		search = search.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if q.Type != nil {
		search = search.Where("type = ?", *q.Type)
	}
	if q.Status != nil {
		search = search.Where("status = ?", *q.Status)
	}
	if q.CreatedBy != "" {
		search = search.Where("created_by = ?", q.CreatedBy)
	}
	if !q.StartDate.IsZero() {
		search = search.Where("created_time >= ?", q.StartDate)
	}
	if !q.EndDate.IsZero() {
		// inclusive of the whole end day
		end := q.EndDate
		dayAfter := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
		search = search.Where("created_time < ?", dayAfter)
	}

	var totalCount int64
	if err := search.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	cases := []domain.SimulationCase{}
	offset := (q.PageNumber - 1) * q.PageSize
	if err := search.Order("created_time DESC, id DESC").Offset(offset).Limit(q.PageSize).Find(&cases).Error; err != nil {
		return nil, err
	}

	return misc.BuildPagedResult(cases, totalCount, q.PageNumber, q.PageSize), nil
}

func GetById(ctx context.Context, id types.ID) (*domain.SimulationCase, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	record := domain.SimulationCase{}
	if err := db.Scopes(liveCases).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func GetByName(ctx context.Context, name string) (*domain.SimulationCase, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	record := domain.SimulationCase{}
	if err := db.Scopes(liveCases).Where("name = ?", name).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func GetByIds(ctx context.Context, ids []types.ID) ([]domain.SimulationCase, error) {
	cases := []domain.SimulationCase{}
	if len(ids) == 0 {
		return cases, nil
	}
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Scopes(liveCases).Where("id in (?)", ids).Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// CreateCase assigns the id and inserts the record as given.
// The unique index (name, deleted_time) is the authoritative guard against
// duplicated live names, whatever pre-checks callers ran.
func CreateCase(ctx context.Context, record *domain.SimulationCase) error {
	record.ID = idgen.NextID(caseIdWorker)
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Create(record).Error; err != nil {
		return err
	}
	logrus.Infof("simulation case %d (%s) created", record.ID, record.Name)
	return nil
}

// UpdateCase persists the mutable fields of record and stamps
// last_modified_time. Status is owned by UpdateCaseStatus and is not written
// here. Returns false when the record is missing or already deleted.
func UpdateCase(ctx context.Context, record *domain.SimulationCase) (bool, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	changes := map[string]interface{}{
		"name":               record.Name,
		"type":               record.Type,
		"working_path":       record.WorkingPath,
		"description":        record.Description,
		"version":            record.Version,
		"last_modified_time": types.CurrentTimestamp(),
	}
	result := db.Model(&domain.SimulationCase{}).Scopes(liveCases).Where("id = ?", record.ID).Updates(changes)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		logrus.Infof("simulation case %d updated to version %d", record.ID, record.Version)
		return true, nil
	}
	return false, nil
}

// DeleteCase marks one live record deleted. Idempotent: a second call finds
// no live row and reports false.
func DeleteCase(ctx context.Context, id types.ID) (bool, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	now := types.CurrentTimestamp()
	result := db.Model(&domain.SimulationCase{}).Scopes(liveCases).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_time": now, "last_modified_time": now})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		logrus.Infof("simulation case %d deleted", id)
		return true, nil
	}
	return false, nil
}

// BatchDeleteCases marks every live record of ids deleted and returns how
// many rows actually changed. Unknown or already-deleted ids are skipped,
// they do not fail the batch.
func BatchDeleteCases(ctx context.Context, ids []types.ID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	now := types.CurrentTimestamp()
	result := db.Model(&domain.SimulationCase{}).Scopes(liveCases).Where("id in (?)", ids).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_time": now, "last_modified_time": now})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		logrus.Infof("%d of %d simulation cases deleted", result.RowsAffected, len(ids))
	}
	return int(result.RowsAffected), nil
}

// ExistsByName reports whether a live record other than excludeId carries
// the name. Pass zero excludeId to check all live records.
func ExistsByName(ctx context.Context, name string, excludeId types.ID) (bool, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	search := db.Model(&domain.SimulationCase{}).Scopes(liveCases).Where("name = ?", name)
	if excludeId != 0 {
		search = search.Where("id != ?", excludeId)
	}
	var count int64
	if err := search.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateCaseStatus writes status and last_modified_time only; version is
// left alone so metadata edits and status flips stay independent.
func UpdateCaseStatus(ctx context.Context, id types.ID, status domain.SimulationStatus) (bool, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	result := db.Model(&domain.SimulationCase{}).Scopes(liveCases).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "last_modified_time": types.CurrentTimestamp()})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		logrus.Infof("simulation case %d status changed to %d", id, status)
		return true, nil
	}
	return false, nil
}

// StatusCountsByUser groups the live records of createdBy by status.
// Statuses without records are absent from the result.
func StatusCountsByUser(ctx context.Context, createdBy string) (map[domain.SimulationStatus]int, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	rows, err := db.Model(&domain.SimulationCase{}).Scopes(liveCases).
		Where("created_by = ?", createdBy).
		Select("status, COUNT(*) AS total").Group("status").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.SimulationStatus]int{}
	for rows.Next() {
		var status domain.SimulationStatus
		var total int
		if err := rows.Scan(&status, &total); err != nil {
			return nil, err
		}
		counts[status] = total
	}
	return counts, rows.Err()
}

// TypeDistribution groups all live records by simulation type.
// Types without records are absent from the result.
func TypeDistribution(ctx context.Context) (map[domain.SimulationType]int, error) {
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	rows, err := db.Model(&domain.SimulationCase{}).Scopes(liveCases).
		Select("type, COUNT(*) AS total").Group("type").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[domain.SimulationType]int{}
	for rows.Next() {
		var simulationType domain.SimulationType
		var total int
		if err := rows.Scan(&simulationType, &total); err != nil {
			return nil, err
		}
		distribution[simulationType] = total
	}
	return distribution, rows.Err()
}
