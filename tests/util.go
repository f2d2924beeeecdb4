package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/trezcool/guruwali/core"
	"github.com/trezcool/guruwali/core/journal"
	inmemdb "github.com/trezcool/guruwali/storage/database/inmem"
)

// NewConfig returns the configuration tests run with.
func NewConfig() *core.Config {
	return &core.Config{
		Env:      "TEST",
		AppName:  "Jurnal Guru Wali",
		TestMode: true,
		Server:   core.ServerConfig{DisableReqLogs: true},
		Store:    core.StoreConfig{KeyPrefix: "guru_wali_"},
		Defaults: core.DefaultsConfig{
			AcademicYear:         "2025/2026",
			TeacherName:          "Wiwit Purnomo, S.Pd",
			TeacherNIP:           "-",
			TeacherSchool:        "SMP Negeri 2 Magelang",
			TeacherSchoolAddress: "Magelang",
		},
	}
}

type logger struct{}

// NewLogger returns a core.Logger that drops everything.
func NewLogger() core.Logger { return logger{} }

func (logger) Debug(string, ...interface{}) {}
func (logger) Info(string, ...interface{})  {}
func (logger) Warn(string, ...interface{})  {}
func (logger) Error(string, ...interface{}) {}
func (logger) Fatal(string, ...interface{}) {}

// Banner records every notice it is shown.
type Banner struct {
	mu      sync.Mutex
	notices []core.Notice
}

func NewBanner() *Banner { return new(Banner) }

func (b *Banner) Show(kind core.NoticeKind, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, core.Notice{Kind: kind, Message: msg})
}

func (b *Banner) Notices() []core.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]core.Notice(nil), b.notices...)
}

type Push struct {
	Endpoint string
	Target   journal.Target
	Payload  interface{}
}

// Notifier records every push instead of sending it.
type Notifier struct {
	mu     sync.Mutex
	pushes []Push
}

func NewNotifier() *Notifier { return new(Notifier) }

func (n *Notifier) Push(endpoint string, target journal.Target, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushes = append(n.pushes, Push{Endpoint: endpoint, Target: target, Payload: payload})
}

func (n *Notifier) Pushes() []Push {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Push(nil), n.pushes...)
}

// NewJournalService returns a loaded journal.Service over an in-memory store.
func NewJournalService(t *testing.T, banner core.Banner, notifier journal.Notifier) (*journal.Service, journal.Store) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("NewJournalService() failed: %v", err)
	}
	store := inmemdb.NewStore(db)
	svc := journal.NewService(store, notifier, banner, NewLogger(), NewConfig())
	if errs := svc.Load(context.Background()); len(errs) > 0 {
		t.Fatalf("NewJournalService() failed: %v", errs)
	}
	return svc, store
}

func CreateStudent(t *testing.T, svc *journal.Service, id, name, className string) journal.Student {
	s := journal.Student{ID: id, Name: name, ClassName: className}
	if err := svc.AddStudent(context.Background(), s); err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

func CreateLog(t *testing.T, svc *journal.Service, id string, s journal.Student, year string, aspect journal.CounselingAspect) journal.CounselingLog {
	l := journal.CounselingLog{
		ID:           id,
		Date:         "2025-08-01",
		AcademicYear: year,
		StudentID:    s.ID,
		StudentName:  s.Name,
		ClassName:    s.ClassName,
		Type:         journal.TypeIndividual,
		Aspect:       aspect,
		Status:       journal.StatusBaik,
	}
	if err := svc.AddLog(context.Background(), l); err != nil {
		t.Fatalf("CreateLog() failed: %v", err)
	}
	return l
}
