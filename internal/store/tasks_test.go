package store_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskpad/internal/service"
	"taskpad/internal/store"
	"taskpad/internal/testutil"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestTaskStore_AddFirstTask(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)

	if !s.Add(context.Background(), "Buy milk", "") {
		t.Fatalf("expected add to succeed, got %q", s.Err())
	}

	want := []service.Task{{ID: 1, Title: "Buy milk", Description: "", IsCompleted: false}}
	if diff := cmp.Diff(want, s.Tasks()); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestTaskStore_AddOrdersMostRecentFirst(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)

	if !s.Add(context.Background(), "A", "") {
		t.Fatalf("add A failed: %q", s.Err())
	}
	if !s.Add(context.Background(), "B", "") {
		t.Fatalf("add B failed: %q", s.Err())
	}

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "B" || tasks[1].Title != "A" {
		t.Errorf("expected order [B, A], got [%s, %s]", tasks[0].Title, tasks[1].Title)
	}
}

func TestTaskStore_AddFailureLeavesCollection(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)
	s.Add(context.Background(), "Keep me", "")
	before := s.Tasks()

	svc.CreateTaskErr = &service.RequestError{Status: 500, Message: "boom"}
	if s.Add(context.Background(), "New", "") {
		t.Fatal("expected add to fail")
	}

	if diff := cmp.Diff(before, s.Tasks()); diff != "" {
		t.Errorf("failed add must not touch the collection (-want +got):\n%s", diff)
	}
	if s.Err() != "boom" {
		t.Errorf("expected error %q, got %q", "boom", s.Err())
	}
}

func TestTaskStore_UpdateReplacesWithServerTask(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)
	s.Add(context.Background(), "Buy milk", "")

	if !s.Update(context.Background(), 1, service.TaskPatch{IsCompleted: boolPtr(true)}) {
		t.Fatalf("expected update to succeed, got %q", s.Err())
	}

	want := []service.Task{{ID: 1, Title: "Buy milk", Description: "", IsCompleted: true}}
	if diff := cmp.Diff(want, s.Tasks()); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestTaskStore_UpdateFailureLeavesEntry(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)
	s.Add(context.Background(), "Buy milk", "")
	before := s.Tasks()

	svc.PatchTaskErr = &service.RequestError{Status: 500, Message: "boom"}
	if s.Update(context.Background(), 1, service.TaskPatch{Title: strPtr("changed")}) {
		t.Fatal("expected update to fail")
	}

	if diff := cmp.Diff(before, s.Tasks()); diff != "" {
		t.Errorf("failed update must not touch the entry (-want +got):\n%s", diff)
	}
}

// An id the store has never seen still goes to the service; the
// post-success replace is then a no-op and the returned task is not
// inserted. A later fetch reconciles.
func TestTaskStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask("Server only", "", false)
	s := store.NewTaskStore(svc)

	if !s.Update(context.Background(), 1, service.TaskPatch{IsCompleted: boolPtr(true)}) {
		t.Fatalf("expected update to succeed remotely, got %q", s.Err())
	}
	if len(s.Tasks()) != 0 {
		t.Error("update of an unknown id must not insert the task locally")
	}
}

func TestTaskStore_DeleteRemoves(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)
	s.Add(context.Background(), "Buy milk", "")

	if !s.Delete(context.Background(), 1) {
		t.Fatalf("expected delete to succeed, got %q", s.Err())
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(s.Tasks()))
	}
}

func TestTaskStore_DeleteFailureKeepsEntry(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)
	s.Add(context.Background(), "Buy milk", "")

	svc.RemoveTaskErr = &service.RequestError{Status: 500, Message: "boom"}
	if s.Delete(context.Background(), 1) {
		t.Fatal("expected delete to fail")
	}
	if len(s.Tasks()) != 1 {
		t.Error("failed delete must leave the entry present")
	}
}

func TestTaskStore_FetchAllReplacesCollection(t *testing.T) {
	svc := testutil.NewFakeService()
	first := svc.SeedTask("First", "notes", false)
	second := svc.SeedTask("Second", "", true)
	s := store.NewTaskStore(svc)

	s.FetchAll(context.Background())

	if s.Err() != "" {
		t.Fatalf("unexpected error: %q", s.Err())
	}
	// Newest first, verbatim from the service.
	want := []service.Task{second, first}
	if diff := cmp.Diff(want, s.Tasks()); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
	if s.Loading() {
		t.Error("loading should be cleared after fetch")
	}
}

func TestTaskStore_FetchFailureKeepsCollection(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask("Keep me", "", false)
	s := store.NewTaskStore(svc)
	s.FetchAll(context.Background())
	before := s.Tasks()

	svc.ListTasksErr = &service.RequestError{Status: 500, Message: "boom"}
	s.FetchAll(context.Background())

	if diff := cmp.Diff(before, s.Tasks()); diff != "" {
		t.Errorf("failed fetch must not touch the collection (-want +got):\n%s", diff)
	}
	if s.Err() != "boom" {
		t.Errorf("expected error %q, got %q", "boom", s.Err())
	}
	if s.Loading() {
		t.Error("loading should be cleared after a failed fetch")
	}
}

func TestTaskStore_ClearErrorIdempotent(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)

	s.ClearError()
	if s.Err() != "" {
		t.Errorf("expected empty error, got %q", s.Err())
	}

	svc.CreateTaskErr = &service.RequestError{Status: 500, Message: "boom"}
	s.Add(context.Background(), "X", "")
	s.ClearError()
	s.ClearError()
	if s.Err() != "" {
		t.Errorf("expected empty error after ClearError, got %q", s.Err())
	}
}

func TestTaskStore_MutationClearsPriorError(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)

	svc.CreateTaskErr = &service.RequestError{Status: 500, Message: "boom"}
	s.Add(context.Background(), "X", "")
	if s.Err() == "" {
		t.Fatal("expected error after failed add")
	}

	svc.CreateTaskErr = nil
	if !s.Add(context.Background(), "X", "") {
		t.Fatalf("expected add to succeed, got %q", s.Err())
	}
	if s.Err() != "" {
		t.Errorf("a new operation must clear the prior error, got %q", s.Err())
	}
}

// After a sequence of successful mutations the local collection must
// agree with what a fetch against the same remote state would return.
func TestTaskStore_NoDriftAfterMutationSequence(t *testing.T) {
	svc := testutil.NewFakeService()
	s := store.NewTaskStore(svc)
	ctx := context.Background()

	if !s.Add(ctx, "One", "") {
		t.Fatalf("add failed: %q", s.Err())
	}
	if !s.Add(ctx, "Two", "details") {
		t.Fatalf("add failed: %q", s.Err())
	}
	if !s.Update(ctx, 1, service.TaskPatch{IsCompleted: boolPtr(true)}) {
		t.Fatalf("update failed: %q", s.Err())
	}
	if !s.Delete(ctx, 2) {
		t.Fatalf("delete failed: %q", s.Err())
	}
	if !s.Add(ctx, "Three", "") {
		t.Fatalf("add failed: %q", s.Err())
	}
	if !s.Update(ctx, 3, service.TaskPatch{Title: strPtr("Three renamed")}) {
		t.Fatalf("update failed: %q", s.Err())
	}

	localIDs := make([]int64, 0, len(s.Tasks()))
	for _, task := range s.Tasks() {
		localIDs = append(localIDs, task.ID)
	}
	if diff := cmp.Diff(svc.IDs(), localIDs); diff != "" {
		t.Errorf("id drift between store and service (-service +store):\n%s", diff)
	}

	// A full refresh lands on the identical collection.
	local := s.Tasks()
	s.FetchAll(ctx)
	if diff := cmp.Diff(local, s.Tasks()); diff != "" {
		t.Errorf("fetch after mutations changed the collection (-local +fetched):\n%s", diff)
	}
}
