// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

// contactRowID is the only row of "portal_contact".
const contactRowID = 1

type infoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInfoRepository constructs an [InfoRepository] over the "portal_contact"
// and "duty_schedule" tables. Both are seeded by the migration.
func NewInfoRepository(db *DB, logger *logger.Logger) InfoRepository {
	logger.Debug().Msg("creating info repository")
	return &infoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *infoRepository) GetInfoPage(ctx context.Context) (models.InfoPage, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.queryRow(ctx, r.db, r.db.builder.
		Select("phone", "email", "address", "emergency_phone", "updated_at", "updated_by").
		From("portal_contact").
		Where(sq.Eq{"id": contactRowID}))
	if err != nil {
		log.Err(err).Str("func", "*infoRepository.GetInfoPage").Msg("error querying contact info")
		return models.InfoPage{}, err
	}

	var page models.InfoPage
	err = row.Scan(&page.Contact.Phone, &page.Contact.Email, &page.Contact.Address,
		&page.Contact.EmergencyPhone, &page.UpdatedAt, &page.UpdatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InfoPage{}, ErrRecordNotFound
		}
		return models.InfoPage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	rows, err := r.db.query(ctx, r.db, r.db.builder.
		Select("day", "morning", "afternoon").
		From("duty_schedule").
		OrderBy("position"))
	if err != nil {
		log.Err(err).Str("func", "*infoRepository.GetInfoPage").Msg("error querying duty schedule")
		return models.InfoPage{}, err
	}
	defer rows.Close()

	page.Schedule = make([]models.DutyDay, 0, len(models.ScheduleDays))
	for rows.Next() {
		var day models.DutyDay
		if err = rows.Scan(&day.Day, &day.Morning, &day.Afternoon); err != nil {
			return models.InfoPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		page.Schedule = append(page.Schedule, day)
	}
	if err = rows.Err(); err != nil {
		return models.InfoPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return page, nil
}

// UpdateInfoPage replaces the contact row and the hours of every listed day
// in one transaction. A day without a row fails with [ErrUnknownDay].
func (r *infoRepository) UpdateInfoPage(ctx context.Context, page models.InfoPage, updatedAt time.Time) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		affected, err := r.db.exec(ctx, tx, r.db.builder.Update("portal_contact").
			Set("phone", page.Contact.Phone).
			Set("email", page.Contact.Email).
			Set("address", page.Contact.Address).
			Set("emergency_phone", page.Contact.EmergencyPhone).
			Set("updated_at", updatedAt.UTC()).
			Set("updated_by", page.UpdatedBy).
			Where(sq.Eq{"id": contactRowID}))
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRecordNotFound
		}

		for _, day := range page.Schedule {
			affected, err = r.db.exec(ctx, tx, r.db.builder.Update("duty_schedule").
				Set("morning", day.Morning).
				Set("afternoon", day.Afternoon).
				Where(sq.Eq{"day": day.Day}))
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("%w: %q", ErrUnknownDay, day.Day)
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrUnknownDay) {
		logger.FromContext(ctx).Err(err).Str("func", "*infoRepository.UpdateInfoPage").Msg("error updating info page")
	}
	return err
}
