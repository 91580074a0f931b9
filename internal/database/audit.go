package database

import (
	"log/slog"

	"shop-backoffice/internal/models"

	"gorm.io/gorm"
)

// CreateAuditLog пишет запись в журнал аудита. Ошибка записи не прерывает
// основное действие, только логируется.
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil || userID == 0 {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := DB.Create(&record).Error; err != nil {
		slog.Warn("failed to write audit log",
			slog.String("entity", entity), slog.Uint64("entity_id", uint64(entityID)), slog.Any("error", err))
	}
}

// RecentAuditLogs возвращает последние limit записей, новые сверху.
func RecentAuditLogs(db *gorm.DB, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.Preload("User").Order("created_at desc, id desc").Limit(limit).Find(&logs).Error
	return logs, translate(err)
}
