package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TreePlanting struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID         `gorm:"index" json:"user_id"`
	TokensCost       int               `json:"tokens_cost"` // tree_count x 10
	TreeCount        int               `json:"tree_count"`  // 1-10
	CertificateID    string            `gorm:"unique" json:"certificate_id"`
	PlantingLocation string            `json:"planting_location"`
	Status           string            `json:"status"` // starts "confirmed"
	Metadata         datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

const TreePlantingStatusConfirmed = "confirmed"
