package casestore

import (
	"avda/domain"

	"github.com/jinzhu/gorm"
)

// Migrate creates the simulation_cases table, the (name, deleted_time)
// unique index from the entity tags, and the composite query indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.SimulationCase{}).Error; err != nil {
		return err
	}

	table := (&domain.SimulationCase{}).TableName()
	compositeIndexes := map[string][]string{
		"idx_case_created_by_type": {"created_by", "type"},
		"idx_case_status_deleted":  {"status", "is_deleted"},
	}
	for name, columns := range compositeIndexes {
		if db.Dialect().HasIndex(table, name) {
			continue
		}
		if err := db.Model(&domain.SimulationCase{}).AddIndex(name, columns...).Error; err != nil {
			return err
		}
	}
	return nil
}
