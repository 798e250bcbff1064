package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/task-tracker/internal/models"
)

// AddIndexes adds the indexes used by task listing and the dashboards.
func AddIndexes(db *gorm.DB, log *zap.SugaredLogger) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
	}{
		// View data filters on date, employee views on the owner
		{&models.Task{}, "idx_tasks_date", "date"},
		{&models.Task{}, "idx_tasks_user_id_date", "user_id, date"},
		{&models.Task{}, "idx_tasks_team_id", "team_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debugw("index already exists, skipping", "index", idx.name)
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Infow("created index", "index", idx.name, "table", stmt.Schema.Table, "columns", idx.columns)
	}

	return nil
}
