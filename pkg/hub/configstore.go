package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"opendom.xyz/home-automation-service/pkg/db"
	"opendom.xyz/home-automation-service/pkg/models"
)

// GormConfigStore keeps the config document as a single versioned snapshot
// row. Save is compare-and-swap on the revision the document was loaded at,
// so a stale writer gets ErrConflict instead of silently clobbering a
// concurrent edit.
type GormConfigStore struct {
	Db db.DB
}

func NewGormConfigStore(database db.DB) *GormConfigStore {
	return &GormConfigStore{Db: database}
}

func (s *GormConfigStore) Load(ctx context.Context) (*models.ConfigDocument, error) {
	var snapshot models.ConfigSnapshot
	err := s.Db.Conn.WithContext(ctx).First(&snapshot, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ConfigDocument{}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc models.ConfigDocument
	if err := json.Unmarshal(snapshot.Payload, &doc); err != nil {
		return nil, fmt.Errorf("corrupt config snapshot: %w", err)
	}
	doc.Revision = snapshot.Revision
	return &doc, nil
}

func (s *GormConfigStore) Save(ctx context.Context, doc *models.ConfigDocument) error {
	payload := *doc
	payload.Revision = 0
	encoded, err := json.Marshal(&payload)
	if err != nil {
		return err
	}

	return s.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored int64
		var snapshot models.ConfigSnapshot
		err := tx.First(&snapshot, 1).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			stored = 0
		case err != nil:
			return err
		default:
			stored = snapshot.Revision
		}

		if doc.Revision != stored {
			return fmt.Errorf("%w: document revision %d, stored revision %d",
				ErrConflict, doc.Revision, stored)
		}

		snapshot.ID = 1
		snapshot.Revision = stored + 1
		snapshot.Payload = encoded
		snapshot.UpdatedAt = time.Now()
		if err := tx.Save(&snapshot).Error; err != nil {
			return err
		}

		doc.Revision = snapshot.Revision
		return nil
	})
}
