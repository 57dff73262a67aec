package domain

import "testing"

func TestJobStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusAccepted, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},

		// Skipping a step is never allowed.
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusAccepted, StatusCompleted, false},

		// Backwards moves are never allowed.
		{StatusAccepted, StatusPending, false},
		{StatusInProgress, StatusAccepted, false},
		{StatusCompleted, StatusInProgress, false},

		// Completed is terminal, self-loops are invalid.
		{StatusCompleted, StatusCompleted, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestParseJobStatus(t *testing.T) {
	for _, s := range []string{"pending", "accepted", "in_progress", "completed"} {
		if _, err := ParseJobStatus(s); err != nil {
			t.Errorf("ParseJobStatus(%q) returned error: %v", s, err)
		}
	}
	if _, err := ParseJobStatus("cancelled"); err == nil {
		t.Error("ParseJobStatus accepted an unknown status")
	}
}

func TestJob_IsParticipant(t *testing.T) {
	artist := "artist_1"
	job := &Job{BuyerID: "buyer_1", ArtistID: &artist}

	if !job.IsParticipant("buyer_1") {
		t.Error("buyer must be a participant")
	}
	if !job.IsParticipant("artist_1") {
		t.Error("assigned artist must be a participant")
	}
	if job.IsParticipant("someone_else") {
		t.Error("a third party must not be a participant")
	}

	unclaimed := &Job{BuyerID: "buyer_1"}
	if unclaimed.IsParticipant("artist_1") {
		t.Error("an unassigned job has no artist participant")
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("buyer"); err != nil || r != RoleBuyer {
		t.Errorf("ParseRole(buyer) = %v, %v", r, err)
	}
	if r, err := ParseRole("artist"); err != nil || r != RoleArtist {
		t.Errorf("ParseRole(artist) = %v, %v", r, err)
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Error("ParseRole accepted an unknown role")
	}
}
