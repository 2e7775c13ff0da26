package tasklist

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

func sequentialIDs() func() task.ID {
	n := 0
	return func() task.ID {
		n++
		return task.ID(fmt.Sprintf("id-%d", n))
	}
}

func newTestStore(t *testing.T, blob store.Blob) *Store {
	t.Helper()
	if blob == nil {
		blob = store.NewMemory()
	}
	s := New(blob, WithIDSource(sequentialIDs()))
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func mustAdd(t *testing.T, s *Store, text string, due string) task.Task {
	t.Helper()
	tk, err := s.AddTask(text, task.MustParseDate(due))
	if err != nil {
		t.Fatalf("add %q: %v", text, err)
	}
	return tk
}

func texts(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

func TestScenarioAddToggleFilter(t *testing.T) {
	s := newTestStore(t, nil)

	milk := mustAdd(t, s, "Buy milk", "2025-06-01")
	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	if tasks[0].Done {
		t.Fatalf("new task must be open")
	}
	if got := tasks[0].DueDate.String(); got != "2025-06-01" {
		t.Fatalf("expected due date 2025-06-01, got %q", got)
	}

	toggled, err := s.ToggleDone(milk.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Done {
		t.Fatalf("expected task to be done")
	}

	s.SetFilter(task.Active)
	if v := s.VisibleTasks(); len(v) != 0 {
		t.Fatalf("expected no active tasks, got %v", v)
	}

	s.SetFilter(task.Completed)
	v := s.VisibleTasks()
	if len(v) != 1 || v[0].ID != milk.ID {
		t.Fatalf("expected exactly the milk task, got %v", v)
	}
}

func TestScenarioRemoveKeepsIdentity(t *testing.T) {
	s := newTestStore(t, nil)
	a := mustAdd(t, s, "A", "")
	b := mustAdd(t, s, "B", "")

	if err := s.RemoveTask(a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "B" {
		t.Fatalf("expected [B], got %v", texts(tasks))
	}
	if tasks[0].ID != b.ID {
		t.Fatalf("expected B to keep id %s, got %s", b.ID, tasks[0].ID)
	}
}

func TestScenarioBlankSaveKeepsSessionOpen(t *testing.T) {
	s := newTestStore(t, nil)
	a := mustAdd(t, s, "A", "")

	if err := s.StartEdit(a.ID); err != nil {
		t.Fatalf("start edit: %v", err)
	}
	empty := ""
	s.UpdateDraft(DraftUpdate{Text: &empty})

	if _, err := s.SaveEdit(); !errors.Is(err, ErrValidationRejected) {
		t.Fatalf("expected ErrValidationRejected, got %v", err)
	}
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Fatalf("committed text changed to %q", got.Text)
	}
	sess, ok := s.Session()
	if !ok {
		t.Fatalf("expected session to stay open")
	}
	if sess.TargetID != a.ID || sess.DraftText != "" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestAddRejectsBlank(t *testing.T) {
	blob := store.NewMemory()
	s := newTestStore(t, blob)
	mustAdd(t, s, "keep", "")
	writes := blob.Writes()

	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := s.AddTask(in, task.Date{}); !errors.Is(err, ErrValidationRejected) {
			t.Fatalf("AddTask(%q): expected ErrValidationRejected, got %v", in, err)
		}
	}
	if n := len(s.Tasks()); n != 1 {
		t.Fatalf("expected length 1, got %d", n)
	}
	if blob.Writes() != writes {
		t.Fatalf("rejected add must not persist")
	}
}

func TestAddTrimsText(t *testing.T) {
	s := newTestStore(t, nil)
	tk := mustAdd(t, s, "  walk dog  ", "")
	if tk.Text != "walk dog" {
		t.Fatalf("expected trimmed text, got %q", tk.Text)
	}
}

func TestCancelEditIdempotent(t *testing.T) {
	s := newTestStore(t, nil)
	mustAdd(t, s, "A", "")
	before := s.Tasks()
	rev := s.Revision()

	s.CancelEdit()
	s.CancelEdit()

	if _, ok := s.Session(); ok {
		t.Fatalf("expected no session")
	}
	if s.Revision() != rev {
		t.Fatalf("cancel must not change the list")
	}
	after := s.Tasks()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("cancel changed tasks: %v -> %v", before, after)
	}
}

func TestSingleActiveEdit(t *testing.T) {
	s := newTestStore(t, nil)
	a := mustAdd(t, s, "A", "")
	b := mustAdd(t, s, "B", "")

	if err := s.StartEdit(a.ID); err != nil {
		t.Fatalf("start edit a: %v", err)
	}
	draft := "A changed"
	s.UpdateDraft(DraftUpdate{Text: &draft})

	if err := s.StartEdit(b.ID); err != nil {
		t.Fatalf("start edit b: %v", err)
	}
	sess, ok := s.Session()
	if !ok || sess.TargetID != b.ID || sess.DraftText != "B" {
		t.Fatalf("expected fresh session on B, got %+v", sess)
	}
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Fatalf("unsaved draft leaked into A: %q", got.Text)
	}

	if _, err := s.SaveEdit(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Fatalf("saving B touched A: %q", got.Text)
	}
}

func TestSaveEditCommitsAndPersists(t *testing.T) {
	blob := store.NewMemory()
	s := newTestStore(t, blob)
	a := mustAdd(t, s, "A", "2025-01-01")

	if err := s.StartEdit(a.ID); err != nil {
		t.Fatalf("start edit: %v", err)
	}
	text := "  A, but better "
	due := task.MustParseDate("2025-02-02")
	s.UpdateDraft(DraftUpdate{Text: &text, DueDate: &due})

	got, err := s.SaveEdit()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.ID != a.ID || got.Text != "A, but better" || got.DueDate != due {
		t.Fatalf("unexpected saved task %+v", got)
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("expected session closed after save")
	}

	reloaded := New(blob)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if r, _ := reloaded.Get(a.ID); r != got {
		t.Fatalf("expected persisted %+v, got %+v", got, r)
	}
}

func TestSaveEditClearsDueDate(t *testing.T) {
	s := newTestStore(t, nil)
	a := mustAdd(t, s, "A", "2025-01-01")
	_ = s.StartEdit(a.ID)
	var none task.Date
	s.UpdateDraft(DraftUpdate{DueDate: &none})
	got, err := s.SaveEdit()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.HasDueDate() {
		t.Fatalf("expected due date cleared, got %s", got.DueDate)
	}
}

func TestNoSessionOperationsAreNoOps(t *testing.T) {
	blob := store.NewMemory()
	s := newTestStore(t, blob)
	mustAdd(t, s, "A", "")
	writes := blob.Writes()

	text := "ghost"
	s.UpdateDraft(DraftUpdate{Text: &text})
	got, err := s.SaveEdit()
	if err != nil {
		t.Fatalf("save without session: %v", err)
	}
	if got != (task.Task{}) {
		t.Fatalf("expected zero task, got %+v", got)
	}
	if blob.Writes() != writes {
		t.Fatalf("no-op save must not persist")
	}
	if texts(s.Tasks())[0] != "A" {
		t.Fatalf("no-op save changed tasks")
	}
}

func TestRemoveEditTargetClosesSession(t *testing.T) {
	s := newTestStore(t, nil)
	a := mustAdd(t, s, "A", "")
	b := mustAdd(t, s, "B", "")

	_ = s.StartEdit(b.ID)
	if err := s.RemoveTask(a.ID); err != nil {
		t.Fatalf("remove a: %v", err)
	}
	if _, ok := s.Session(); !ok {
		t.Fatalf("removing another task must keep the session")
	}
	if err := s.RemoveTask(b.ID); err != nil {
		t.Fatalf("remove b: %v", err)
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("removing the edit target must close the session")
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	blob := store.NewMemory()
	s := newTestStore(t, blob)
	a := mustAdd(t, s, "A", "")
	_ = s.StartEdit(a.ID)
	writes := blob.Writes()
	rev := s.Revision()

	if _, err := s.ToggleDone("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("toggle: expected ErrTaskNotFound, got %v", err)
	}
	if err := s.RemoveTask("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("remove: expected ErrTaskNotFound, got %v", err)
	}
	if err := s.StartEdit("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("start edit: expected ErrTaskNotFound, got %v", err)
	}
	if sess, ok := s.Session(); !ok || sess.TargetID != a.ID {
		t.Fatalf("failed start edit must keep the open session, got %+v", sess)
	}
	if blob.Writes() != writes || s.Revision() != rev {
		t.Fatalf("unknown ids must not change or persist anything")
	}
}

func TestRoundTripPersistLoad(t *testing.T) {
	blob := store.NewMemory()
	s := newTestStore(t, blob)
	mustAdd(t, s, "one", "2025-06-01")
	two := mustAdd(t, s, "two", "")
	mustAdd(t, s, "three", "2026-12-31")
	if _, err := s.ToggleDone(two.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := s.Persist(); err != nil {
		t.Fatalf("persist: %v", err)
	}

	other := New(blob)
	if err := other.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	want, got := s.Tasks(), other.Tasks()
	if len(want) != len(got) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("task %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestReloadSeesOtherProcessWrites(t *testing.T) {
	base := filepath.Join(t.TempDir(), "db")
	readerBlob, err := store.NewDiskv(base)
	if err != nil {
		t.Fatalf("diskv: %v", err)
	}
	writerBlob, err := store.NewDiskv(base)
	if err != nil {
		t.Fatalf("diskv: %v", err)
	}

	reader := newTestStore(t, readerBlob)
	writer := newTestStore(t, writerBlob)

	mustAdd(t, writer, "first", "")
	if err := reader.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := texts(reader.Tasks()); len(got) != 1 {
		t.Fatalf("expected [first], got %v", got)
	}

	mustAdd(t, writer, "second", "")
	if err := reader.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := texts(reader.Tasks())
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected [first second], got %v", got)
	}
}

func TestFilterPartitionAndOrder(t *testing.T) {
	s := newTestStore(t, nil)
	var ids []task.ID
	for i := 0; i < 6; i++ {
		ids = append(ids, mustAdd(t, s, fmt.Sprintf("t%d", i), "").ID)
	}
	for _, i := range []int{1, 2, 5} {
		if _, err := s.ToggleDone(ids[i]); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}

	s.SetFilter(task.Active)
	active := s.VisibleTasks()
	s.SetFilter(task.Completed)
	completed := s.VisibleTasks()

	union := map[task.ID]bool{}
	for _, tk := range active {
		union[tk.ID] = true
	}
	for _, tk := range completed {
		if union[tk.ID] {
			t.Fatalf("task %s is both active and completed", tk.ID)
		}
		union[tk.ID] = true
	}
	if len(union) != len(ids) {
		t.Fatalf("expected union of %d ids, got %d", len(ids), len(union))
	}

	s.SetFilter(task.All)
	all := s.VisibleTasks()
	for i, tk := range all {
		if tk.ID != ids[i] {
			t.Fatalf("filtering reordered tasks: %v", all)
		}
	}
}

func TestViewChangesDoNotPersist(t *testing.T) {
	blob := store.NewMemory()
	s := newTestStore(t, blob)
	a := mustAdd(t, s, "A", "")
	writes := blob.Writes()

	s.SetFilter(task.Completed)
	_ = s.StartEdit(a.ID)
	text := "draft"
	s.UpdateDraft(DraftUpdate{Text: &text})
	s.CancelEdit()
	_ = s.VisibleTasks()

	if blob.Writes() != writes {
		t.Fatalf("view changes persisted %d times", blob.Writes()-writes)
	}
}

func TestTasksAreCopyOnWrite(t *testing.T) {
	s := newTestStore(t, nil)
	a := mustAdd(t, s, "A", "")
	snapshot := s.Tasks()
	rev := s.Revision()

	if _, err := s.ToggleDone(a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if snapshot[0].Done {
		t.Fatalf("earlier snapshot observed a later mutation")
	}
	if s.Revision() == rev {
		t.Fatalf("expected revision to advance")
	}

	snapshot[0].Text = "hacked"
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Fatalf("writing to a snapshot changed the store")
	}
}

func TestLoadAbsentIsEmpty(t *testing.T) {
	s := New(store.NewMemory())
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestLoadCorruptStartsEmpty(t *testing.T) {
	cases := map[string]string{
		"not json":      `{{{`,
		"wrong shape":   `{"tasks": []}`,
		"blank text":    `[{"id":"a","text":"  ","done":false}]`,
		"bad date":      `[{"id":"a","text":"A","dueDate":"next week","done":false}]`,
		"missing done":  `[{"id":"a","text":"A"}]`,
		"extra field":   `[{"id":"a","text":"A","done":false,"priority":1}]`,
		"duplicate ids": `[{"id":"a","text":"A","done":false},{"id":"a","text":"B","done":true}]`,
		"partial":       `[{"id":"a","text":"A","done":false},{"id":"b","done":"yes"}]`,
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			blob := store.NewMemory()
			if err := blob.Write(store.DefaultKey, []byte(value)); err != nil {
				t.Fatalf("seed: %v", err)
			}
			s := New(blob)
			err := s.Load()
			if !errors.Is(err, ErrStorageCorrupt) {
				t.Fatalf("expected ErrStorageCorrupt, got %v", err)
			}
			if len(s.Tasks()) != 0 {
				t.Fatalf("expected no partial recovery, got %v", s.Tasks())
			}
			if _, err := s.AddTask("fresh", task.Date{}); err != nil {
				t.Fatalf("store must stay usable: %v", err)
			}
		})
	}
}

func TestLoadReadFailureStartsEmpty(t *testing.T) {
	blob := store.NewMemory()
	blob.FailReads = errors.New("permission denied")
	s := New(blob)
	if err := s.Load(); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	blob := store.NewMemory()
	s := newTestStore(t, blob)
	blob.FailWrites = errors.New("disk full")

	tk, err := s.AddTask("A", task.Date{})
	if !errors.Is(err, ErrStorageUnavailable) || !IsWarning(err) {
		t.Fatalf("expected storage warning, got %v", err)
	}
	if got, ok := s.Get(tk.ID); !ok || got.Text != "A" {
		t.Fatalf("expected in-memory add to stick, got %+v", got)
	}

	blob.FailWrites = nil
	if _, err := s.ToggleDone(tk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	reloaded := New(blob)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got, ok := reloaded.Get(tk.ID); !ok || !got.Done {
		t.Fatalf("expected next successful write to carry the whole list, got %+v", got)
	}
}

func TestCustomKey(t *testing.T) {
	blob := store.NewMemory()
	s := New(blob, WithKey("chores"))
	if _, err := s.AddTask("sweep", task.Date{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := blob.Read("chores"); err != nil {
		t.Fatalf("expected value under custom key: %v", err)
	}
	if _, err := blob.Read(store.DefaultKey); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected default key untouched, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	s := New(store.NewMemory(), WithIDSource(func() func() task.ID {
		ids := []task.ID{"abc123", "abd456", "xyz789"}
		i := 0
		return func() task.ID {
			id := ids[i]
			i++
			return id
		}
	}()))
	for _, text := range []string{"one", "two", "three"} {
		if _, err := s.AddTask(text, task.Date{}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if got, err := s.Resolve("xy"); err != nil || got.Text != "three" {
		t.Fatalf("expected unique prefix to resolve, got %+v, %v", got, err)
	}
	if got, err := s.Resolve("abc123"); err != nil || got.Text != "one" {
		t.Fatalf("expected full id to resolve, got %+v, %v", got, err)
	}
	if _, err := s.Resolve("ab"); !errors.Is(err, ErrAmbiguousID) {
		t.Fatalf("expected ErrAmbiguousID, got %v", err)
	}
	if _, err := s.Resolve("q"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDuplicateIDSourceRejected(t *testing.T) {
	s := New(store.NewMemory(), WithIDSource(func() task.ID { return "same" }))
	if _, err := s.AddTask("one", task.Date{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddTask("two", task.Date{}); err == nil {
		t.Fatalf("expected duplicate id to be refused")
	}
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected refused add to leave one task")
	}
}
