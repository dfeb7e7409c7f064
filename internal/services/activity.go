package services

import (
	"log"

	"github.com/diewo77/devis-app/internal/models"

	"gorm.io/gorm"
)

// ActivityService records the audit trail. Recording is best effort: a
// failed insert is logged and otherwise ignored so auditing can never fail
// a user request.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService { return &ActivityService{DB: db} }

func (s *ActivityService) Record(action, entity string, entityID uint, detail string) {
	entry := models.ActivityLog{Action: action, Entity: entity, EntityID: entityID, Detail: detail}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("activity log: %v", err)
	}
}

// Recent returns the latest entries, newest first.
func (s *ActivityService) Recent(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.ActivityLog
	err := s.DB.Order("id desc").Limit(limit).Find(&entries).Error
	return entries, err
}
