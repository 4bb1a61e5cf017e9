package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"
)

// In-memory repository fakes. They mirror the storage contracts: reads hide
// soft-deleted records unless asked, absent ids surface as not-found errors,
// and returned values are copies so tests cannot mutate stored state by
// accident.

type fakeDroneRepo struct {
	mu     sync.Mutex
	seq    int
	drones map[string]*entity.Drone
}

func newFakeDroneRepo() *fakeDroneRepo {
	return &fakeDroneRepo{drones: make(map[string]*entity.Drone)}
}

func (r *fakeDroneRepo) GetAll(_ context.Context, includeDeleted bool) ([]*entity.Drone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Drone
	for _, d := range r.drones {
		if d.IsDeleted && !includeDeleted {
			continue
		}
		copied := *d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDroneRepo) GetByID(_ context.Context, id string) (*entity.Drone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drones[id]
	if !ok {
		return nil, apperrors.NotFound("drone %s not found", id)
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDroneRepo) Create(_ context.Context, fields entity.DroneFields, actorID string) (*entity.Drone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	d := &entity.Drone{
		Meta: entity.Meta{
			ID:        fmt.Sprintf("drone-%d", r.seq),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
			CreatedBy: actorID,
			UpdatedBy: actorID,
		},
		DroneFields: fields,
	}
	r.drones[d.ID] = d
	copied := *d
	return &copied, nil
}

func (r *fakeDroneRepo) Update(_ context.Context, id string, fields entity.DroneFields, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drones[id]
	if !ok {
		return apperrors.NotFound("drone %s not found", id)
	}
	d.DroneFields = fields
	d.UpdatedAt = time.Now().UTC()
	d.UpdatedBy = actorID
	return nil
}

func (r *fakeDroneRepo) SetDeleted(_ context.Context, id string, deleted bool, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drones[id]
	if !ok {
		return apperrors.NotFound("drone %s not found", id)
	}
	d.IsDeleted = deleted
	if deleted {
		now := time.Now().UTC()
		d.DeletedAt = &now
	} else {
		d.DeletedAt = nil
	}
	d.UpdatedBy = actorID
	return nil
}

type fakeFlightRepo struct {
	mu      sync.Mutex
	seq     int
	flights map[string]*entity.Flight
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{flights: make(map[string]*entity.Flight)}
}

func (r *fakeFlightRepo) GetAll(_ context.Context, includeDeleted bool) ([]*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Flight
	for _, f := range r.flights {
		if f.IsDeleted && !includeDeleted {
			continue
		}
		copied := *f
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFlightRepo) GetByUser(_ context.Context, userID string, includeDeleted bool) ([]*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Flight
	for _, f := range r.flights {
		if f.UserID != userID {
			continue
		}
		if f.IsDeleted && !includeDeleted {
			continue
		}
		copied := *f
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFlightRepo) GetByID(_ context.Context, id string) (*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[id]
	if !ok {
		return nil, apperrors.NotFound("flight %s not found", id)
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFlightRepo) Create(_ context.Context, fields entity.FlightFields, actorID string) (*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	f := &entity.Flight{
		Meta: entity.Meta{
			ID:        fmt.Sprintf("flight-%d", r.seq),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
			CreatedBy: actorID,
			UpdatedBy: actorID,
		},
		FlightFields: fields,
	}
	r.flights[f.ID] = f
	copied := *f
	return &copied, nil
}

func (r *fakeFlightRepo) Update(_ context.Context, id string, fields entity.FlightFields, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[id]
	if !ok {
		return apperrors.NotFound("flight %s not found", id)
	}
	f.FlightFields = fields
	f.UpdatedBy = actorID
	return nil
}

func (r *fakeFlightRepo) SetDeleted(_ context.Context, id string, deleted bool, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[id]
	if !ok {
		return apperrors.NotFound("flight %s not found", id)
	}
	f.IsDeleted = deleted
	f.UpdatedBy = actorID
	return nil
}

type fakeChecklistRepo struct {
	mu         sync.Mutex
	seq        int
	checklists map[string]*entity.ProcedureChecklist
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{checklists: make(map[string]*entity.ProcedureChecklist)}
}

func (r *fakeChecklistRepo) GetAll(_ context.Context, includeDeleted bool) ([]*entity.ProcedureChecklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ProcedureChecklist
	for _, c := range r.checklists {
		if c.IsDeleted && !includeDeleted {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeChecklistRepo) GetByID(_ context.Context, id string) (*entity.ProcedureChecklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checklists[id]
	if !ok {
		return nil, apperrors.NotFound("checklist %s not found", id)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeChecklistRepo) Create(_ context.Context, fields entity.ChecklistFields, actorID string) (*entity.ProcedureChecklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c := &entity.ProcedureChecklist{
		Meta: entity.Meta{
			ID:        fmt.Sprintf("checklist-%d", r.seq),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
			CreatedBy: actorID,
			UpdatedBy: actorID,
		},
		ChecklistFields: fields,
	}
	r.checklists[c.ID] = c
	copied := *c
	return &copied, nil
}

func (r *fakeChecklistRepo) Update(_ context.Context, id string, fields entity.ChecklistFields, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checklists[id]
	if !ok {
		return apperrors.NotFound("checklist %s not found", id)
	}
	c.ChecklistFields = fields
	c.UpdatedBy = actorID
	return nil
}

func (r *fakeChecklistRepo) SetDeleted(_ context.Context, id string, deleted bool, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checklists[id]
	if !ok {
		return apperrors.NotFound("checklist %s not found", id)
	}
	c.IsDeleted = deleted
	c.UpdatedBy = actorID
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	touchErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", id)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) EnsureProfile(_ context.Context, id, email string) (*entity.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, false, nil
	}
	u := &entity.User{
		ID:        id,
		Email:     email,
		Role:      entity.RoleUser,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	r.users[id] = u
	copied := *u
	return &copied, true, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, fields entity.UserFields, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.NotFound("user %s not found", id)
	}
	u.UserFields = fields
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id string, role entity.Role, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.NotFound("user %s not found", id)
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.touchErr != nil {
		return r.touchErr
	}
	u, ok := r.users[id]
	if !ok {
		return apperrors.NotFound("user %s not found", id)
	}
	u.LastLoginAt = &at
	return nil
}

func (r *fakeUserRepo) add(u *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

type fakeAuditRepo struct {
	mu        sync.Mutex
	entries   []*entity.AuditLog
	appendErr error
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Append(_ context.Context, entry *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	copied := *entry
	r.entries = append(r.entries, &copied)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AuditLog
	for _, e := range r.entries {
		if filter.EntityType != "" && e.EntityType != filter.EntityType {
			continue
		}
		if filter.EntityID != "" && e.EntityID != filter.EntityID {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeAuditRepo) last() *entity.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[len(r.entries)-1]
}

func (r *fakeAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// fakeAttachmentRepo recognizes URLs under its base and records deletions.
type fakeAttachmentRepo struct {
	mu        sync.Mutex
	base      string
	deleted   []string
	deleteErr error
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{base: "https://cdn.example.com/"}
}

func (r *fakeAttachmentRepo) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	return r.base + key, nil
}

func (r *fakeAttachmentRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, key)
	return nil
}

func (r *fakeAttachmentRepo) KeyForURL(url string) (string, bool) {
	if !strings.HasPrefix(url, r.base) {
		return "", false
	}
	return strings.TrimPrefix(url, r.base), true
}

func (r *fakeAttachmentRepo) deletedKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deleted...)
}
