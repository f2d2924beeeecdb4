package journal

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core"
)

var errBoom = errors.New("boom")

type memStore struct {
	mu        sync.Mutex
	values    map[string]string
	failLoad  map[string]bool
	failSave  map[string]bool
	saveCalls []string
}

func newMemStore() *memStore {
	return &memStore{
		values:   make(map[string]string),
		failLoad: make(map[string]bool),
		failSave: make(map[string]bool),
	}
}

func (s *memStore) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failLoad[key] {
		return "", false, errBoom
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCalls = append(s.saveCalls, key)
	if s.failSave[key] {
		return errBoom
	}
	s.values[key] = value
	return nil
}

type push struct {
	endpoint string
	target   Target
	payload  interface{}
}

type recNotifier struct {
	mu     sync.Mutex
	pushes []push
}

func (n *recNotifier) Push(endpoint string, target Target, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushes = append(n.pushes, push{endpoint: endpoint, target: target, payload: payload})
}

type recBanner struct {
	mu      sync.Mutex
	notices []core.Notice
}

func (b *recBanner) Show(kind core.NoticeKind, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, core.Notice{Kind: kind, Message: msg})
}

func (b *recBanner) last() core.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.notices) == 0 {
		return core.Notice{}
	}
	return b.notices[len(b.notices)-1]
}

func (b *recBanner) count(kind core.NoticeKind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, notice := range b.notices {
		if notice.Kind == kind {
			n++
		}
	}
	return n
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

var testDefaults = core.DefaultsConfig{
	AcademicYear:         "2025/2026",
	TeacherName:          "Wiwit Purnomo, S.Pd",
	TeacherNIP:           "-",
	TeacherSchool:        "SMP Negeri 2 Magelang",
	TeacherSchoolAddress: "Magelang",
}

type fixture struct {
	svc      *Service
	store    *memStore
	notifier *recNotifier
	banner   *recBanner
}

func setup() fixture {
	return setupWithStore(newMemStore())
}

func setupWithStore(store *memStore) fixture {
	f := fixture{
		store:    store,
		notifier: new(recNotifier),
		banner:   new(recBanner),
	}
	conf := &core.Config{Defaults: testDefaults}
	f.svc = NewService(f.store, f.notifier, f.banner, nopLogger{}, conf)
	return f
}

func newStudent(id, name, class string) Student {
	return Student{ID: id, Name: name, ClassName: class}
}

func newLog(id, studentID, studentName, year string) CounselingLog {
	return CounselingLog{
		ID:           id,
		Date:         "2025-08-01",
		AcademicYear: year,
		StudentID:    studentID,
		StudentName:  studentName,
		ClassName:    "7A",
		Type:         TypeIndividual,
		Aspect:       AspectAkademik,
		Status:       StatusBaik,
	}
}
