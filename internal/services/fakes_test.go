package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"innkeep/internal/models/db_models"
	"innkeep/pkg/utils"
)

type fakeMembershipRepo struct {
	byUser map[uuid.UUID]*db_models.AccountUser
	err    error
}

func (f *fakeMembershipRepo) FirstForUser(_ context.Context, userID uuid.UUID) (*db_models.AccountUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account

	procErr       error
	clearErr      error
	calls         []string
	clearedIDs    []uuid.UUID
	procIDs       []uuid.UUID
	scheduledPlan string
	scheduledID   string
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) ClearScheduleID(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "clear_schedule_id")
	f.clearedIDs = append(f.clearedIDs, id)
	return f.clearErr
}

func (f *fakeAccountRepo) RequestCancellation(context.Context, uuid.UUID) error {
	f.calls = append(f.calls, "request_account_cancellation")
	return f.procErr
}

func (f *fakeAccountRepo) DeleteCascade(context.Context, uuid.UUID) error {
	f.calls = append(f.calls, "delete_account_cascade")
	return f.procErr
}

func (f *fakeAccountRepo) SetCancelAtPeriodEnd(_ context.Context, accountID uuid.UUID, cancel bool) (bool, error) {
	f.calls = append(f.calls, "set_cancel_at_period_end")
	f.procIDs = append(f.procIDs, accountID)
	if f.procErr != nil {
		return false, f.procErr
	}
	return cancel, nil
}

func (f *fakeAccountRepo) ClearPendingPlan(_ context.Context, accountID uuid.UUID) error {
	f.calls = append(f.calls, "clear_pending_plan")
	f.procIDs = append(f.procIDs, accountID)
	return f.procErr
}

func (f *fakeAccountRepo) SchedulePlanChange(_ context.Context, accountID uuid.UUID, plan, priceID string) (time.Time, error) {
	f.calls = append(f.calls, "schedule_plan_change")
	f.procIDs = append(f.procIDs, accountID)
	if f.procErr != nil {
		return time.Time{}, f.procErr
	}
	f.scheduledPlan, f.scheduledID = plan, priceID
	return time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), nil
}

type fakeProvider struct {
	portalCalls   int
	cancelCalls   []string
	cancelErr     error
	lastReturnURL string
}

func (f *fakeProvider) CreatePortalSession(_ context.Context, customerID, returnURL string) (string, error) {
	f.portalCalls++
	f.lastReturnURL = returnURL
	return "https://billing.example.com/session/" + customerID, nil
}

func (f *fakeProvider) CancelSchedule(_ context.Context, scheduleID string) error {
	f.cancelCalls = append(f.cancelCalls, scheduleID)
	return f.cancelErr
}

type fakeRoomRepo struct {
	roomTypes []db_models.RoomType
	rooms     []db_models.Room
	createErr error
	created   []*db_models.Room
}

func (f *fakeRoomRepo) FindRoomType(_ context.Context, id uuid.UUID) (*db_models.RoomType, error) {
	for i := range f.roomTypes {
		if f.roomTypes[i].ID == id {
			return &f.roomTypes[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) ListRoomTypes(_ context.Context, propertyID uuid.UUID) ([]db_models.RoomType, error) {
	var out []db_models.RoomType
	for _, t := range f.roomTypes {
		if t.PropertyID == propertyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) ListByRoomTypes(_ context.Context, ids []uuid.UUID) ([]db_models.Room, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []db_models.Room
	for _, r := range f.rooms {
		if want[r.RoomTypeID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]db_models.Room, error) {
	var out []db_models.Room
	for _, r := range f.rooms {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Create(_ context.Context, room *db_models.Room) error {
	if f.createErr != nil {
		return f.createErr
	}
	room.ID = uuid.New()
	f.created = append(f.created, room)
	return nil
}

type fakePropertyRepo struct {
	properties []db_models.Property
}

func (f *fakePropertyRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Property, error) {
	for i := range f.properties {
		if f.properties[i].ID == id {
			return &f.properties[i], nil
		}
	}
	return nil, nil
}

func (f *fakePropertyRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.Property, error) {
	var out []db_models.Property
	for _, p := range f.properties {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeGenerator struct {
	prompt string
	out    string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, _, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

func procErr(msg string) error {
	return &utils.ProcedureError{Procedure: "test", Message: msg, Err: errors.New(msg)}
}
