package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubArtworkRepo struct {
	byID map[string]*domain.Artwork
}

func newStubArtworkRepo() *stubArtworkRepo {
	return &stubArtworkRepo{byID: make(map[string]*domain.Artwork)}
}

func (r *stubArtworkRepo) Create(_ context.Context, a *domain.Artwork) error {
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubArtworkRepo) FindByID(_ context.Context, id string) (*domain.Artwork, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrArtworkNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArtworkRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Artwork, error) {
	var out []*domain.Artwork
	for _, a := range r.byID {
		if a.OwnerID == ownerID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

// stubJobRepo mirrors the compare-and-set behaviour of the real repositories.
type stubJobRepo struct {
	byID map[string]*domain.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[string]*domain.Job)}
}

func cloneStubJob(j *domain.Job) *domain.Job {
	clone := *j
	clone.Messages = append([]domain.Message(nil), j.Messages...)
	if j.ArtistID != nil {
		id := *j.ArtistID
		clone.ArtistID = &id
	}
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	r.byID[j.ID] = cloneStubJob(j)
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return cloneStubJob(j), nil
}

func (r *stubJobRepo) List(_ context.Context, f ports.ListJobsFilter) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.byID {
		switch f.View {
		case ports.JobViewBoard:
			if j.Status != domain.StatusPending {
				continue
			}
		case ports.JobViewBuyer:
			if j.BuyerID != f.UserID {
				continue
			}
		case ports.JobViewArtist:
			if j.ArtistID == nil || *j.ArtistID != f.UserID {
				continue
			}
		}
		out = append(out, cloneStubJob(j))
	}
	return out, nil
}

func (r *stubJobRepo) Accept(_ context.Context, jobID, artistID string) (*domain.Job, error) {
	j, ok := r.byID[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status != domain.StatusPending || j.ArtistID != nil {
		return nil, domain.ErrInvalidTransition
	}
	j.Status = domain.StatusAccepted
	j.ArtistID = &artistID
	return cloneStubJob(j), nil
}

func (r *stubJobRepo) AdvanceStatus(_ context.Context, jobID string, from, to domain.JobStatus) (*domain.Job, error) {
	j, ok := r.byID[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	j.Status = to
	return cloneStubJob(j), nil
}

func (r *stubJobRepo) AppendMessage(_ context.Context, jobID string, msg domain.Message) (*domain.Job, error) {
	j, ok := r.byID[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	j.Messages = append(j.Messages, msg)
	return cloneStubJob(j), nil
}

// stubDispatcher records enqueued activities synchronously.
type stubDispatcher struct {
	activities []domain.JobActivity
}

func (d *stubDispatcher) Enqueue(activity domain.JobActivity) {
	d.activities = append(d.activities, activity)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buyerSession(id string) ports.Session {
	return ports.Session{UserID: id, ActiveRole: domain.RoleBuyer, Roles: []domain.Role{domain.RoleBuyer}}
}

func artistSession(id string) ports.Session {
	return ports.Session{UserID: id, ActiveRole: domain.RoleArtist, Roles: []domain.Role{domain.RoleArtist}}
}

type jobFixture struct {
	svc        *JobService
	jobs       *stubJobRepo
	artworks   *stubArtworkRepo
	dispatcher *stubDispatcher
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	jobs := newStubJobRepo()
	artworks := newStubArtworkRepo()
	dispatcher := &stubDispatcher{}
	return &jobFixture{
		svc:        NewJobService(jobs, artworks, dispatcher, discardLogger),
		jobs:       jobs,
		artworks:   artworks,
		dispatcher: dispatcher,
	}
}

func (f *jobFixture) seedArtwork(t *testing.T, ownerID string) *domain.Artwork {
	t.Helper()
	a := &domain.Artwork{ID: "art_" + ownerID, Prompt: "a fox in autumn", ImageHandle: "img_1", OwnerID: ownerID, CreatedAt: time.Now().UTC()}
	if err := f.artworks.Create(context.Background(), a); err != nil {
		t.Fatalf("seeding artwork: %v", err)
	}
	return a
}

func (f *jobFixture) createJob(t *testing.T, buyerID string) *domain.Job {
	t.Helper()
	a := f.seedArtwork(t, buyerID)
	job, err := f.svc.Create(context.Background(), buyerSession(buyerID), ports.CreateJobInput{
		ArtworkID:   a.ID,
		Title:       "Commission this",
		Description: "oil on canvas",
		Budget:      250,
	})
	if err != nil {
		t.Fatalf("creating job: %v", err)
	}
	return job
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestJobService_Create_Success(t *testing.T) {
	f := newJobFixture(t)

	job := f.createJob(t, "b1")

	if job.Status != domain.StatusPending {
		t.Errorf("new job must be pending, got %s", job.Status)
	}
	if job.ArtistID != nil {
		t.Error("new job must be unassigned")
	}
	if len(job.Messages) != 0 {
		t.Error("new job must have an empty chat thread")
	}
	if job.BuyerID != "b1" {
		t.Errorf("buyer id = %s", job.BuyerID)
	}
	if len(f.dispatcher.activities) != 1 || f.dispatcher.activities[0].Status != domain.StatusPending {
		t.Errorf("creation must record a pending activity, got %v", f.dispatcher.activities)
	}
}

func TestJobService_Create_RequiresBuyerRole(t *testing.T) {
	f := newJobFixture(t)
	a := f.seedArtwork(t, "u1")

	_, err := f.svc.Create(context.Background(), artistSession("u1"), ports.CreateJobInput{ArtworkID: a.ID, Budget: 100})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestJobService_Create_RejectsNonPositiveBudget(t *testing.T) {
	f := newJobFixture(t)
	a := f.seedArtwork(t, "b1")

	for _, budget := range []float64{0, -5} {
		_, err := f.svc.Create(context.Background(), buyerSession("b1"), ports.CreateJobInput{ArtworkID: a.ID, Budget: budget})
		if !errors.Is(err, domain.ErrInvalidBudget) {
			t.Errorf("budget %v: expected ErrInvalidBudget, got %v", budget, err)
		}
	}
}

func TestJobService_Create_RejectsForeignArtwork(t *testing.T) {
	f := newJobFixture(t)
	a := f.seedArtwork(t, "someone_else")

	_, err := f.svc.Create(context.Background(), buyerSession("b1"), ports.CreateJobInput{ArtworkID: a.ID, Budget: 100})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func TestJobService_Lifecycle_FullForwardRun(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")
	ctx := context.Background()
	artist := artistSession("art1")

	accepted, err := f.svc.UpdateStatus(ctx, artist, job.ID, domain.StatusAccepted)
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if accepted.ArtistID == nil || *accepted.ArtistID != "art1" {
		t.Fatalf("accept must assign the artist, got %v", accepted.ArtistID)
	}

	if _, err := f.svc.UpdateStatus(ctx, artist, job.ID, domain.StatusInProgress); err != nil {
		t.Fatalf("in_progress failed: %v", err)
	}
	done, err := f.svc.UpdateStatus(ctx, artist, job.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if done.Status != domain.StatusCompleted {
		t.Errorf("final status = %s", done.Status)
	}

	// One enqueued activity per lifecycle event, creation included.
	if len(f.dispatcher.activities) != 4 {
		t.Errorf("expected 4 audit activities, got %d", len(f.dispatcher.activities))
	}
}

func TestJobService_UpdateStatus_FirstAcceptWins(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")
	ctx := context.Background()

	if _, err := f.svc.UpdateStatus(ctx, artistSession("art1"), job.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}
	_, err := f.svc.UpdateStatus(ctx, artistSession("art2"), job.ID, domain.StatusAccepted)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second accept must fail with ErrInvalidTransition, got %v", err)
	}

	stored, _ := f.jobs.FindByID(ctx, job.ID)
	if stored.ArtistID == nil || *stored.ArtistID != "art1" {
		t.Errorf("losing accept must not overwrite the artist, got %v", stored.ArtistID)
	}
}

func TestJobService_UpdateStatus_RejectsSkippingStates(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")

	_, err := f.svc.UpdateStatus(context.Background(), artistSession("art1"), job.ID, domain.StatusCompleted)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestJobService_UpdateStatus_AcceptRequiresArtistRole(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")

	_, err := f.svc.UpdateStatus(context.Background(), buyerSession("b1"), job.ID, domain.StatusAccepted)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestJobService_UpdateStatus_OnlyAssignedArtistAdvances(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")
	ctx := context.Background()

	if _, err := f.svc.UpdateStatus(ctx, artistSession("art1"), job.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	_, err := f.svc.UpdateStatus(ctx, artistSession("art2"), job.ID, domain.StatusInProgress)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("a different artist must be rejected, got %v", err)
	}
	_, err = f.svc.UpdateStatus(ctx, buyerSession("b1"), job.ID, domain.StatusInProgress)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("the buyer must not advance the job, got %v", err)
	}
}

func TestJobService_UpdateStatus_UnknownJob(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), artistSession("art1"), "missing", domain.StatusAccepted)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Visibility
// ---------------------------------------------------------------------------

func TestJobService_Get_PendingVisibleToAnyAuthenticatedUser(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")

	if _, err := f.svc.Get(context.Background(), artistSession("browsing_artist"), job.ID); err != nil {
		t.Errorf("pending jobs are board-visible, got %v", err)
	}
}

func TestJobService_Get_ClaimedJobRestrictedToParticipants(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")
	ctx := context.Background()

	if _, err := f.svc.UpdateStatus(ctx, artistSession("art1"), job.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if _, err := f.svc.Get(ctx, buyerSession("b1"), job.ID); err != nil {
		t.Errorf("buyer must see the claimed job, got %v", err)
	}
	if _, err := f.svc.Get(ctx, artistSession("art1"), job.ID); err != nil {
		t.Errorf("assigned artist must see the claimed job, got %v", err)
	}
	if _, err := f.svc.Get(ctx, artistSession("art2"), job.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("outsider must be rejected, got %v", err)
	}
}

func TestJobService_List_Views(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")
	ctx := context.Background()

	board, err := f.svc.List(ctx, artistSession("art1"), ports.JobViewBoard)
	if err != nil || len(board) != 1 {
		t.Fatalf("board view = %v, %v", board, err)
	}

	if _, err := f.svc.UpdateStatus(ctx, artistSession("art1"), job.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	board, _ = f.svc.List(ctx, artistSession("art1"), ports.JobViewBoard)
	if len(board) != 0 {
		t.Errorf("accepted jobs must leave the board, got %d", len(board))
	}
	mine, _ := f.svc.List(ctx, artistSession("art1"), ports.JobViewArtist)
	if len(mine) != 1 {
		t.Errorf("artist view must show the claimed job, got %d", len(mine))
	}
	commissioned, _ := f.svc.List(ctx, buyerSession("b1"), ports.JobViewBuyer)
	if len(commissioned) != 1 {
		t.Errorf("buyer view must show the commissioned job, got %d", len(commissioned))
	}
}

// ---------------------------------------------------------------------------
// Chat
// ---------------------------------------------------------------------------

func TestJobService_AddMessage_AppendsInOrder(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")
	ctx := context.Background()

	if _, err := f.svc.UpdateStatus(ctx, artistSession("art1"), job.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if _, err := f.svc.AddMessage(ctx, buyerSession("b1"), job.ID, "any updates?"); err != nil {
		t.Fatalf("buyer message failed: %v", err)
	}
	if _, err := f.svc.AddMessage(ctx, artistSession("art1"), job.ID, "sketch is done"); err != nil {
		t.Fatalf("artist message failed: %v", err)
	}

	msgs, err := f.svc.ListMessages(ctx, buyerSession("b1"), job.ID)
	if err != nil {
		t.Fatalf("listing messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "any updates?" || msgs[1].Text != "sketch is done" {
		t.Errorf("messages out of append order: %v", msgs)
	}
	if msgs[0].SenderID != "b1" || msgs[1].SenderID != "art1" {
		t.Errorf("sender ids wrong: %v", msgs)
	}
}

func TestJobService_AddMessage_RestrictedToParticipants(t *testing.T) {
	f := newJobFixture(t)
	job := f.createJob(t, "b1")
	ctx := context.Background()

	if _, err := f.svc.UpdateStatus(ctx, artistSession("art1"), job.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	_, err := f.svc.AddMessage(ctx, artistSession("art2"), job.ID, "let me in")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.ListMessages(ctx, artistSession("art2"), job.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden on read, got %v", err)
	}
}
