// Package memstore is an in-memory implementation of the repository stores.
// A transaction runs against a clone of the state and swaps it in on success,
// so a failed transaction leaves nothing behind.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/domain/user"
	"github.com/linskybing/project-review/internal/repository"
)

// Fault points for InjectFault.
const (
	FaultProjectCreate = "project.create"
	FaultMemberCreate  = "member.create"
	FaultMemberDelete  = "member.delete"
	FaultStatusCreate  = "status.create"
	FaultStatusSave    = "status.save"
	FaultDocumentSave  = "document.save"
)

type state struct {
	nextProjectID uint
	nextUserID    uint
	users         map[uint]user.User
	projects      map[uint]project.Project
	members       map[uint][]project.Member
	plans         map[uint]project.Plan
	reports       map[uint]project.Report
	statuses      map[uint]project.Status
}

func newState() *state {
	return &state{
		nextProjectID: 1,
		nextUserID:    1,
		users:         map[uint]user.User{},
		projects:      map[uint]project.Project{},
		members:       map[uint][]project.Member{},
		plans:         map[uint]project.Plan{},
		reports:       map[uint]project.Report{},
		statuses:      map[uint]project.Status{},
	}
}

func (s *state) clone() *state {
	c := &state{
		nextProjectID: s.nextProjectID,
		nextUserID:    s.nextUserID,
		users:         make(map[uint]user.User, len(s.users)),
		projects:      make(map[uint]project.Project, len(s.projects)),
		members:       make(map[uint][]project.Member, len(s.members)),
		plans:         make(map[uint]project.Plan, len(s.plans)),
		reports:       make(map[uint]project.Report, len(s.reports)),
		statuses:      make(map[uint]project.Status, len(s.statuses)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.projects {
		c.projects[k] = v
	}
	for k, v := range s.members {
		c.members[k] = append([]project.Member(nil), v...)
	}
	for k, v := range s.plans {
		c.plans[k] = v
	}
	for k, v := range s.reports {
		c.reports[k] = v
	}
	for k, v := range s.statuses {
		c.statuses[k] = v
	}
	return c
}

// Store owns the committed state. Transactions are serialized by txMu, which
// plays the role of the status row lock.
type Store struct {
	txMu    sync.Mutex
	mu      sync.RWMutex
	st      *state
	faultMu sync.Mutex
	faults  map[string]error
	now     func() time.Time
}

func New() *Store {
	return &Store{
		st:     newState(),
		faults: map[string]error{},
		now:    time.Now,
	}
}

// InjectFault makes the named operation fail with err until cleared with a nil err.
func (s *Store) InjectFault(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	return s.faults[op]
}

// AddUser seeds a user and returns it with its id set.
func (s *Store) AddUser(u user.User) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.st.nextUserID
	s.st.nextUserID++
	s.st.users[u.ID] = u
	return u
}

// Counts reports the committed row counts per table.
type Counts struct {
	Projects, Members, Plans, Reports, Statuses int
}

func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := Counts{
		Projects: len(s.st.projects),
		Plans:    len(s.st.plans),
		Reports:  len(s.st.reports),
		Statuses: len(s.st.statuses),
	}
	for _, m := range s.st.members {
		c.Members += len(m)
	}
	return c
}

// Repos returns stores that read and write the committed state directly and
// open transactions through Tx.
func (s *Store) Repos() *repository.Repos {
	return newView(s, &committed{store: s}).repos()
}

// access hands a state to an operation. The committed accessor locks the
// store; a transaction accessor owns its clone exclusively.
type access interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

type committed struct{ store *Store }

func (c *committed) read(fn func(*state) error) error {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return fn(c.store.st)
}

func (c *committed) write(fn func(*state) error) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return fn(c.store.st)
}

type txState struct{ st *state }

func (t *txState) read(fn func(*state) error) error  { return fn(t.st) }
func (t *txState) write(fn func(*state) error) error { return fn(t.st) }

type view struct {
	store *Store
	acc   access
}

func newView(s *Store, acc access) *view {
	return &view{store: s, acc: acc}
}

func (v *view) repos() *repository.Repos {
	return &repository.Repos{
		Project:  &projectStore{v},
		Member:   &memberStore{v},
		Document: &documentStore{v},
		Status:   &statusStore{v},
		User:     &userStore{v},
		Tx:       v.tx,
	}
}

// tx runs fn on a clone. A top-level transaction commits into the store; a
// nested one commits into its parent's clone.
func (v *view) tx(_ context.Context, fn func(*repository.Repos) error) (err error) {
	parent, nested := v.acc.(*txState)
	if !nested {
		v.store.txMu.Lock()
		defer v.store.txMu.Unlock()
	}

	var snapshot *state
	_ = v.acc.read(func(st *state) error {
		snapshot = st.clone()
		return nil
	})

	child := &txState{st: snapshot}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transaction panicked: %v", r)
		}
	}()
	if err := fn(newView(v.store, child).repos()); err != nil {
		return err
	}

	if nested {
		parent.st = child.st
		return nil
	}
	return v.acc.write(func(st *state) error {
		v.store.st = child.st
		return nil
	})
}

func (v *view) hydrate(st *state, p project.Project) project.Project {
	p.Writer = st.users[p.WriterID]
	p.Members = hydrateMembers(st, st.members[p.ID])
	if s, ok := st.statuses[p.ID]; ok {
		p.Status = &s
	}
	return p
}

func hydrateMembers(st *state, in []project.Member) []project.Member {
	out := make([]project.Member, 0, len(in))
	for _, m := range in {
		m.User = st.users[m.UserID]
		out = append(out, m)
	}
	return out
}

type projectStore struct{ v *view }

func (s *projectStore) Create(_ context.Context, p *project.Project) error {
	if err := s.v.store.fault(FaultProjectCreate); err != nil {
		return err
	}
	return s.v.acc.write(func(st *state) error {
		for _, existing := range st.projects {
			if existing.UUID == p.UUID {
				return fmt.Errorf("duplicate project uuid %s", p.UUID)
			}
		}
		p.ID = st.nextProjectID
		st.nextProjectID++
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.v.store.now()
		}
		row := *p
		row.Writer, row.Members, row.Plan, row.Report, row.Status = user.User{}, nil, nil, nil, nil
		st.projects[p.ID] = row
		return nil
	})
}

func (s *projectStore) FindByUUID(_ context.Context, uuid string) (*project.Project, error) {
	var out *project.Project
	err := s.v.acc.read(func(st *state) error {
		for _, p := range st.projects {
			if p.UUID == uuid {
				h := s.v.hydrate(st, p)
				out = &h
				return nil
			}
		}
		return repository.ErrNotFound
	})
	return out, err
}

func (s *projectStore) Update(_ context.Context, p *project.Project) error {
	return s.v.acc.write(func(st *state) error {
		row, ok := st.projects[p.ID]
		if !ok {
			return nil
		}
		row.Name, row.Description, row.Result = p.Name, p.Description, p.Result
		row.Category, row.Field = p.Category, p.Field
		row.ThumbnailURL, row.Emoji = p.ThumbnailURL, p.Emoji
		st.projects[p.ID] = row
		return nil
	})
}

func (s *projectStore) Delete(_ context.Context, id uint) error {
	return s.v.acc.write(func(st *state) error {
		if _, ok := st.projects[id]; !ok {
			return repository.ErrNotFound
		}
		delete(st.projects, id)
		delete(st.members, id)
		delete(st.plans, id)
		delete(st.reports, id)
		delete(st.statuses, id)
		return nil
	})
}

func (s *projectStore) IncreaseViewCount(_ context.Context, id uint) error {
	return s.v.acc.write(func(st *state) error {
		row, ok := st.projects[id]
		if !ok {
			return nil
		}
		row.ViewCount++
		st.projects[id] = row
		return nil
	})
}

func (s *projectStore) list(filter func(*state, project.Project) bool, less func(a, b project.Project) bool, page, limit int) ([]project.Project, int64, error) {
	var matched []project.Project
	err := s.v.acc.read(func(st *state) error {
		for _, p := range st.projects {
			if filter(st, p) {
				matched = append(matched, s.v.hydrate(st, p))
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(matched, func(i, j int) bool {
		if less(matched[i], matched[j]) {
			return true
		}
		if less(matched[j], matched[i]) {
			return false
		}
		return matched[i].ID > matched[j].ID
	})

	return pageOf(matched, page, limit), int64(len(matched)), nil
}

func pageOf[T any](rows []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(rows) {
		return []T{}
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func isMember(st *state, projectID, userID uint) bool {
	for _, m := range st.members[projectID] {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func isDone(st *state, p project.Project) bool {
	s, ok := st.statuses[p.ID]
	return ok && s.IsReportAccepted != nil && *s.IsReportAccepted
}

func newestFirst(a, b project.Project) bool { return a.CreatedAt.After(b.CreatedAt) }

func (s *projectStore) ListDone(_ context.Context, order project.FeedOrder, page, limit int) ([]project.Project, int64, error) {
	less := newestFirst
	if order == project.FeedPopularity {
		less = func(a, b project.Project) bool {
			if a.ViewCount != b.ViewCount {
				return a.ViewCount > b.ViewCount
			}
			return newestFirst(a, b)
		}
	}
	return s.list(isDone, less, page, limit)
}

func (s *projectStore) SearchByName(_ context.Context, keyword string, page, limit int) ([]project.Project, int64, error) {
	kw := strings.ToLower(keyword)
	return s.list(func(st *state, p project.Project) bool {
		return isDone(st, p) && strings.Contains(strings.ToLower(p.Name), kw)
	}, newestFirst, page, limit)
}

func (s *projectStore) SearchByMember(_ context.Context, keyword string, page, limit int) ([]project.Project, int64, error) {
	kw := strings.ToLower(keyword)
	return s.list(func(st *state, p project.Project) bool {
		if !isDone(st, p) {
			return false
		}
		for _, m := range st.members[p.ID] {
			if strings.Contains(strings.ToLower(st.users[m.UserID].Name), kw) {
				return true
			}
		}
		return false
	}, newestFirst, page, limit)
}

func (s *projectStore) ListPending(_ context.Context, memberID *uint, page, limit int) ([]project.Project, int64, error) {
	submitted := func(p project.Project) time.Time {
		if p.Status == nil {
			return time.Time{}
		}
		if p.Status.ReportSubmittedAt != nil {
			return *p.Status.ReportSubmittedAt
		}
		if p.Status.PlanSubmittedAt != nil {
			return *p.Status.PlanSubmittedAt
		}
		return time.Time{}
	}
	return s.list(func(st *state, p project.Project) bool {
		status, ok := st.statuses[p.ID]
		if !ok {
			return false
		}
		pending := (status.IsPlanSubmitted && status.IsPlanAccepted == nil) ||
			(status.IsReportSubmitted && status.IsReportAccepted == nil)
		if !pending {
			return false
		}
		return memberID == nil || isMember(st, p.ID, *memberID)
	}, func(a, b project.Project) bool {
		return submitted(a).Before(submitted(b))
	}, page, limit)
}

func (s *projectStore) ListByMember(_ context.Context, memberID uint, onlyDone bool, page, limit int) ([]project.Project, int64, error) {
	return s.list(func(st *state, p project.Project) bool {
		return isMember(st, p.ID, memberID) && (!onlyDone || isDone(st, p))
	}, newestFirst, page, limit)
}

func (s *projectStore) ListByReviewState(_ context.Context, memberID uint, want project.DocumentState, page, limit int) ([]project.ReviewRow, int64, error) {
	var rows []project.ReviewRow
	err := s.v.acc.read(func(st *state) error {
		for id, p := range st.projects {
			status, ok := st.statuses[id]
			if !ok || !isMember(st, id, memberID) {
				continue
			}
			for _, t := range []project.DocumentType{project.DocumentPlan, project.DocumentReport} {
				if !hasDocument(st, id, t) {
					continue
				}
				if got, err := status.State(t); err != nil || got != want {
					continue
				}
				rows = append(rows, project.ReviewRow{
					ProjectID:    id,
					UUID:         p.UUID,
					Name:         p.Name,
					ThumbnailURL: p.ThumbnailURL,
					Emoji:        p.Emoji,
					Type:         t,
					SubmittedAt:  status.SubmittedAt(t),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	// latest submission first, never-submitted last
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.SubmittedAt != nil && b.SubmittedAt == nil:
			return true
		case a.SubmittedAt == nil && b.SubmittedAt != nil:
			return false
		case a.SubmittedAt != nil && !a.SubmittedAt.Equal(*b.SubmittedAt):
			return a.SubmittedAt.After(*b.SubmittedAt)
		case a.ProjectID != b.ProjectID:
			return a.ProjectID > b.ProjectID
		}
		return a.Type > b.Type
	})
	return pageOf(rows, page, limit), int64(len(rows)), nil
}

func hasDocument(st *state, projectID uint, t project.DocumentType) bool {
	if t == project.DocumentReport {
		_, ok := st.reports[projectID]
		return ok
	}
	_, ok := st.plans[projectID]
	return ok
}

type memberStore struct{ v *view }

func (s *memberStore) ListByProject(_ context.Context, projectID uint) ([]project.Member, error) {
	var out []project.Member
	err := s.v.acc.read(func(st *state) error {
		out = hydrateMembers(st, st.members[projectID])
		return nil
	})
	return out, err
}

func (s *memberStore) DeleteByProject(_ context.Context, projectID uint) error {
	if err := s.v.store.fault(FaultMemberDelete); err != nil {
		return err
	}
	return s.v.acc.write(func(st *state) error {
		delete(st.members, projectID)
		return nil
	})
}

func (s *memberStore) CreateBatch(_ context.Context, members []project.Member) error {
	if len(members) == 0 {
		return nil
	}
	return s.v.acc.write(func(st *state) error {
		for _, m := range members {
			for _, existing := range st.members[m.ProjectID] {
				if existing.UserID == m.UserID {
					return fmt.Errorf("duplicate member (%d, %d)", m.ProjectID, m.UserID)
				}
			}
			m.User = user.User{}
			st.members[m.ProjectID] = append(st.members[m.ProjectID], m)
		}
		// checked after the rows are written so a rollback has something to undo
		return s.v.store.fault(FaultMemberCreate)
	})
}

type documentStore struct{ v *view }

func (s *documentStore) FindPlan(_ context.Context, projectID uint) (*project.Plan, error) {
	var out *project.Plan
	err := s.v.acc.read(func(st *state) error {
		p, ok := st.plans[projectID]
		if !ok {
			return repository.ErrNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (s *documentStore) CreatePlan(_ context.Context, p *project.Plan) error {
	return s.v.acc.write(func(st *state) error {
		if _, ok := st.plans[p.ProjectID]; ok {
			return fmt.Errorf("duplicate plan for project %d", p.ProjectID)
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.v.store.now()
		}
		st.plans[p.ProjectID] = *p
		return nil
	})
}

func (s *documentStore) SavePlan(_ context.Context, p *project.Plan) error {
	if err := s.v.store.fault(FaultDocumentSave); err != nil {
		return err
	}
	return s.v.acc.write(func(st *state) error {
		st.plans[p.ProjectID] = *p
		return nil
	})
}

func (s *documentStore) DeletePlan(_ context.Context, projectID uint) error {
	return s.v.acc.write(func(st *state) error {
		if _, ok := st.plans[projectID]; !ok {
			return repository.ErrNotFound
		}
		delete(st.plans, projectID)
		return nil
	})
}

func (s *documentStore) FindReport(_ context.Context, projectID uint) (*project.Report, error) {
	var out *project.Report
	err := s.v.acc.read(func(st *state) error {
		r, ok := st.reports[projectID]
		if !ok {
			return repository.ErrNotFound
		}
		out = &r
		return nil
	})
	return out, err
}

func (s *documentStore) CreateReport(_ context.Context, r *project.Report) error {
	return s.v.acc.write(func(st *state) error {
		if _, ok := st.reports[r.ProjectID]; ok {
			return fmt.Errorf("duplicate report for project %d", r.ProjectID)
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = s.v.store.now()
		}
		st.reports[r.ProjectID] = *r
		return nil
	})
}

func (s *documentStore) SaveReport(_ context.Context, r *project.Report) error {
	if err := s.v.store.fault(FaultDocumentSave); err != nil {
		return err
	}
	return s.v.acc.write(func(st *state) error {
		st.reports[r.ProjectID] = *r
		return nil
	})
}

func (s *documentStore) DeleteReport(_ context.Context, projectID uint) error {
	return s.v.acc.write(func(st *state) error {
		if _, ok := st.reports[projectID]; !ok {
			return repository.ErrNotFound
		}
		delete(st.reports, projectID)
		return nil
	})
}

type statusStore struct{ v *view }

func (s *statusStore) Create(_ context.Context, status *project.Status) error {
	if err := s.v.store.fault(FaultStatusCreate); err != nil {
		return err
	}
	return s.v.acc.write(func(st *state) error {
		if _, ok := st.statuses[status.ProjectID]; ok {
			return fmt.Errorf("duplicate status for project %d", status.ProjectID)
		}
		st.statuses[status.ProjectID] = *status
		return nil
	})
}

func (s *statusStore) Get(_ context.Context, projectID uint) (*project.Status, error) {
	var out *project.Status
	err := s.v.acc.read(func(st *state) error {
		status, ok := st.statuses[projectID]
		if !ok {
			return repository.ErrNotFound
		}
		out = &status
		return nil
	})
	return out, err
}

// GetForUpdate needs no lock of its own: transactions already hold txMu.
func (s *statusStore) GetForUpdate(ctx context.Context, projectID uint) (*project.Status, error) {
	return s.Get(ctx, projectID)
}

func (s *statusStore) Save(_ context.Context, status *project.Status) error {
	if err := s.v.store.fault(FaultStatusSave); err != nil {
		return err
	}
	return s.v.acc.write(func(st *state) error {
		st.statuses[status.ProjectID] = *status
		return nil
	})
}

type userStore struct{ v *view }

func (s *userStore) FindByUUID(_ context.Context, uuid string) (*user.User, error) {
	var out *user.User
	err := s.v.acc.read(func(st *state) error {
		for _, u := range st.users {
			if u.UUID == uuid && !u.Deleted {
				out = &u
				return nil
			}
		}
		return repository.ErrNotFound
	})
	return out, err
}

func (s *userStore) FindByUUIDs(_ context.Context, uuids []string) ([]user.User, error) {
	want := make(map[string]struct{}, len(uuids))
	for _, id := range uuids {
		want[id] = struct{}{}
	}
	var out []user.User
	err := s.v.acc.read(func(st *state) error {
		for _, u := range st.users {
			if _, ok := want[u.UUID]; ok && !u.Deleted {
				out = append(out, u)
			}
		}
		return nil
	})
	return out, err
}
