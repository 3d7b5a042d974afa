package database

import (
	"fmt"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	Logger "github.com/ajju-1209/hostel-management/pkg/logger"

	"gorm.io/gorm"
)

// allModels 需要迁移的全部模型
func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.StandardDescription{},
		&models.Complaint{},
	}
}

// Migrate 根据迁移模式同步表结构
// "drop" 删除并重建所有表，其余情况只添加新列和新表
func Migrate(db *gorm.DB, mode string) error {
	if mode == "drop" {
		Logger.Warning("在drop模式下运行，将删除并重建所有表")
		if err := db.Migrator().DropTable(allModels()...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}

	if err := db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	Logger.Info("数据库迁移完成")
	return nil
}
