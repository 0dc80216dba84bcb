package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"dorm-management-api/models"
)

type memStudents struct {
	byID    map[string]*models.Student
	updates int
	failOn  string
}

func newMemStudents(students ...*models.Student) *memStudents {
	m := &memStudents{byID: map[string]*models.Student{}}
	for _, s := range students {
		m.byID[s.ID] = s
	}
	return m
}

func (m *memStudents) FindByID(_ context.Context, id string) (*models.Student, error) {
	return m.byID[id], nil
}

func (m *memStudents) FindByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	for _, s := range m.byID {
		if s.StudentID == studentID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStudents) FindByUsername(_ context.Context, username string) (*models.Student, error) {
	for _, s := range m.byID {
		if s.Username == username {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStudents) FindAll(_ context.Context) ([]models.Student, error) {
	var out []models.Student
	for _, s := range m.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStudents) FindByBuilding(_ context.Context, building string) ([]models.Student, error) {
	var out []models.Student
	for _, s := range m.byID {
		if s.Building() == building {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStudents) Save(_ context.Context, s *models.Student) error {
	m.byID[s.ID] = s
	return nil
}

func (m *memStudents) Update(_ context.Context, s *models.Student) error {
	if m.failOn == "update" {
		return errors.New("student update failed")
	}
	m.updates++
	m.byID[s.ID] = s
	return nil
}

func (m *memStudents) UpdatePassword(_ context.Context, id, hashed string) error {
	if s, ok := m.byID[id]; ok {
		s.Password = hashed
	}
	return nil
}

type memApps struct {
	byID    map[string]*models.DormApplication
	order   []string
	updates int
	deleted []string
}

func newMemApps(apps ...*models.DormApplication) *memApps {
	m := &memApps{byID: map[string]*models.DormApplication{}}
	for _, a := range apps {
		m.byID[a.ID] = a
		m.order = append(m.order, a.ID)
	}
	return m
}

func (m *memApps) FindByStudent(_ context.Context, student *models.Student) (*models.DormApplication, error) {
	for _, id := range m.order {
		if a, ok := m.byID[id]; ok && a.StudentRef == student.ID {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memApps) FindByID(_ context.Context, id string) (*models.DormApplication, error) {
	return m.byID[id], nil
}

func (m *memApps) FindByIDs(_ context.Context, ids []string) ([]*models.DormApplication, error) {
	var out []*models.DormApplication
	for _, id := range ids {
		if a, ok := m.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApps) FindAll(_ context.Context) ([]*models.DormApplication, error) {
	var out []*models.DormApplication
	for _, id := range m.order {
		if a, ok := m.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApps) Save(_ context.Context, a *models.DormApplication) error {
	m.byID[a.ID] = a
	m.order = append(m.order, a.ID)
	return nil
}

func (m *memApps) Update(_ context.Context, a *models.DormApplication) error {
	m.updates++
	m.byID[a.ID] = a
	return nil
}

func (m *memApps) Delete(_ context.Context, a *models.DormApplication) error {
	delete(m.byID, a.ID)
	m.deleted = append(m.deleted, a.ID)
	return nil
}

type memUsers struct {
	byName map[string]*models.User
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{byName: map[string]*models.User{}}
	for _, u := range users {
		m.byName[u.Username] = u
	}
	return m
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return m.byName[username], nil
}

func (m *memUsers) FindAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range m.byName {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) FindByRole(_ context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range m.byName {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUsers) Save(_ context.Context, u *models.User) error {
	m.byName[u.Username] = u
	return nil
}

func (m *memUsers) Delete(_ context.Context, u *models.User) error {
	delete(m.byName, u.Username)
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id, hashed string) error {
	for _, u := range m.byName {
		if u.ID == id {
			u.Password = hashed
		}
	}
	return nil
}

type memMessages struct {
	mu   sync.Mutex
	rows []*models.Message
}

func (m *memMessages) FindByUser(_ context.Context, username string) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Message
	for _, r := range m.rows {
		if r.FromUser == username || r.ToUser == username {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

func (m *memMessages) FindByID(_ context.Context, id string) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memMessages) Save(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, msg)
	return nil
}

func (m *memMessages) Update(_ context.Context, msg *models.Message) error {
	return nil
}

type memAnnouncements struct {
	rows []*models.Announcement
}

func (m *memAnnouncements) FindAll(_ context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	for i := len(m.rows) - 1; i >= 0; i-- {
		out = append(out, *m.rows[i])
	}
	return out, nil
}

func (m *memAnnouncements) FindByID(_ context.Context, id string) (*models.Announcement, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memAnnouncements) Save(_ context.Context, a *models.Announcement) error {
	m.rows = append(m.rows, a)
	return nil
}

func (m *memAnnouncements) Update(_ context.Context, a *models.Announcement) error { return nil }

func (m *memAnnouncements) Delete(_ context.Context, a *models.Announcement) error {
	for i, r := range m.rows {
		if r.ID == a.ID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			break
		}
	}
	return nil
}

type sentMessage struct {
	from, to, content string
}

type recordingMessenger struct {
	sent []sentMessage
}

func (r *recordingMessenger) Send(_ context.Context, from, to, content string) (*models.Message, error) {
	r.sent = append(r.sent, sentMessage{from, to, content})
	return &models.Message{FromUser: from, ToUser: to, Content: content}, nil
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + string(rune('0'+n))
	}
}

func clockAt(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 10, 0, 0, 0, time.Local) }
}
