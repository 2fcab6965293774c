// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/mock"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

func fullWeek(morning, afternoon string) []models.DutyDay {
	week := make([]models.DutyDay, len(models.ScheduleDays))
	for i, day := range models.ScheduleDays {
		week[i] = models.DutyDay{Day: day, Morning: morning, Afternoon: afternoon}
	}
	return week
}

func TestGetInfoPage_Seeded(t *testing.T) {
	env := newTestEnv(t, listsStart)

	page, err := env.info.GetInfoPage(context.Background(), env.ben)
	require.NoError(t, err)
	assert.Equal(t, "+41 44 123 45 67", page.Contact.Phone)
	assert.Equal(t, "Musterstrasse 123, 8000 Zürich", page.Contact.Address)
	require.Len(t, page.Schedule, 7)
	assert.Equal(t, "Montag", page.Schedule[0].Day)
	assert.Equal(t, "Sonntag", page.Schedule[6].Day)

	_, err = env.info.GetInfoPage(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateInfoPage(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	schedule := fullWeek(" 07:30 - 12:00 ", "13:00 - 17:00")
	schedule[0], schedule[6] = schedule[6], schedule[0]
	update := models.InfoUpdate{
		Contact: models.ContactInfo{
			Phone:          "+41 44 111 22 33",
			Email:          " zentrale@zivildienst.ch ",
			Address:        "Bahnhofstrasse 1, 8001 Zürich",
			EmergencyPhone: "+41 44 999 88 77",
		},
		Schedule: schedule,
	}

	page, err := env.info.UpdateInfoPage(ctx, env.admin, update)
	require.NoError(t, err)
	assert.Equal(t, "zentrale@zivildienst.ch", page.Contact.Email)
	assert.Equal(t, "Ada Admin", page.UpdatedBy)
	require.NotNil(t, page.UpdatedAt)
	assert.True(t, page.UpdatedAt.After(listsStart))

	// stored order stays Montag..Sonntag whatever the request order
	require.Len(t, page.Schedule, 7)
	assert.Equal(t, "Montag", page.Schedule[0].Day)
	assert.Equal(t, "07:30 - 12:00", page.Schedule[0].Morning)

	seen, err := env.info.GetInfoPage(ctx, env.anna)
	require.NoError(t, err)
	assert.Equal(t, page.Contact, seen.Contact)
}

func TestUpdateInfoPage_Rejections(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()
	contact := models.ContactInfo{Phone: "1", Email: "a@zivildienst.ch", Address: "x", EmergencyPhone: "2"}

	duplicate := fullWeek("Frei", "Frei")
	duplicate[6].Day = "Montag"
	unknown := fullWeek("Frei", "Frei")
	unknown[6].Day = "Feiertag"
	blankShift := fullWeek("Frei", "Frei")
	blankShift[2].Afternoon = "  "

	tests := []struct {
		name    string
		actor   models.User
		update  models.InfoUpdate
		wantErr error
	}{
		{"not admin", env.anna, models.InfoUpdate{Contact: contact, Schedule: fullWeek("Frei", "Frei")}, ErrAccessDenied},
		{"anonymous", models.User{}, models.InfoUpdate{}, ErrNotAuthenticated},
		{"bad email", env.admin, models.InfoUpdate{Contact: models.ContactInfo{Phone: "1", Email: "kein-mail", Address: "x", EmergencyPhone: "2"}, Schedule: fullWeek("Frei", "Frei")}, ErrInvalidDataProvided},
		{"missing emergency phone", env.admin, models.InfoUpdate{Contact: models.ContactInfo{Phone: "1", Email: "a@zivildienst.ch", Address: "x"}, Schedule: fullWeek("Frei", "Frei")}, ErrInvalidDataProvided},
		{"short week", env.admin, models.InfoUpdate{Contact: contact, Schedule: fullWeek("Frei", "Frei")[:5]}, ErrInvalidDataProvided},
		{"day twice", env.admin, models.InfoUpdate{Contact: contact, Schedule: duplicate}, ErrInvalidDataProvided},
		{"unknown day", env.admin, models.InfoUpdate{Contact: contact, Schedule: unknown}, ErrInvalidDataProvided},
		{"blank shift", env.admin, models.InfoUpdate{Contact: contact, Schedule: blankShift}, ErrInvalidDataProvided},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.info.UpdateInfoPage(ctx, tt.actor, tt.update)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	page, err := env.info.GetInfoPage(ctx, env.admin)
	require.NoError(t, err)
	assert.Nil(t, page.UpdatedAt, "rejected updates leave the page untouched")
}

func TestUpdateInfoPage_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockInfoRepository(ctrl)
	svc := NewInfoService(repo, validators.NewStructValidator(), logger.Nop())
	dbErr := errors.New("disk full")

	repo.EXPECT().UpdateInfoPage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, page models.InfoPage, _ time.Time) error {
			assert.Equal(t, "Ada Admin", page.UpdatedBy)
			return dbErr
		})

	admin := models.User{ID: "admin", FirstName: "Ada", LastName: "Admin", Role: models.RoleAdmin}
	_, err := svc.UpdateInfoPage(context.Background(), admin, models.InfoUpdate{
		Contact:  models.ContactInfo{Phone: "1", Email: "a@zivildienst.ch", Address: "x", EmergencyPhone: "2"},
		Schedule: fullWeek("Frei", "Frei"),
	})
	assert.ErrorIs(t, err, dbErr)
}
