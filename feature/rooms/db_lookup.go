package rooms

import (
	"bas-manager/feature/rooms/models"

	"gorm.io/gorm"
)

// GetDBRoom fetches a single room from the database by ID or occupant name.
func GetDBRoom(db *gorm.DB, identifier string) (*models.Room, error) {
	var room models.Room

	err := db.Where("room = ? OR occupant = ?", identifier, identifier).First(&room).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}
