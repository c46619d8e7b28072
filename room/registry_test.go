package room

import (
	"testing"

	"github.com/Nithin0000007/Rock-paper-scissors/game"
	"github.com/Nithin0000007/Rock-paper-scissors/roomid"
)

func TestRegistry_CreateRoom(t *testing.T) {
	reg := NewRegistry(DefaultMaxRounds)

	roomID, snap := reg.CreateRoom("Alice", "conn1")
	if len(roomID) != roomid.Length {
		t.Errorf("Expected a %d-character room id, got %q", roomid.Length, roomID)
	}
	if len(snap.Players) != 1 || snap.Players[0].Name != "Alice" {
		t.Errorf("Creator should be seated in slot 0, got %+v", snap.Players)
	}
	if snap.GameState != StatusWaiting {
		t.Errorf("New room should be waiting, got %s", snap.GameState)
	}

	if _, exists := reg.GetRoom(roomID); !exists {
		t.Error("Created room should be reachable through the registry")
	}
	if reg.Count() != 1 {
		t.Errorf("Expected 1 live room, got %d", reg.Count())
	}
}

func TestRegistry_JoinRoom_NotFound(t *testing.T) {
	reg := NewRegistry(DefaultMaxRounds)

	_, err := reg.JoinRoom("NOSUCH", "Bob", "conn2")
	if err != ErrRoomNotFound {
		t.Fatalf("Expected ErrRoomNotFound, got %v", err)
	}
	if reg.Count() != 0 {
		t.Error("Failed join should not mutate the registry")
	}
}

func TestRegistry_JoinRoom_Full(t *testing.T) {
	reg := NewRegistry(DefaultMaxRounds)
	roomID, _ := reg.CreateRoom("Alice", "conn1")
	if _, err := reg.JoinRoom(roomID, "Bob", "conn2"); err != nil {
		t.Fatalf("Second player should be able to join: %v", err)
	}

	if _, err := reg.JoinRoom(roomID, "Carol", "conn3"); err != ErrRoomFull {
		t.Fatalf("Expected ErrRoomFull, got %v", err)
	}

	// The rejected connection must not end up associated with the room.
	if _, _, ok := reg.SubmitChoice("conn3", game.ChoiceRock); ok {
		t.Error("Rejected joiner should have no room association")
	}
}

func TestRegistry_SubmitChoice_UnassociatedConnection(t *testing.T) {
	reg := NewRegistry(DefaultMaxRounds)

	if _, _, ok := reg.SubmitChoice("ghost", game.ChoiceRock); ok {
		t.Error("Choice from an unknown connection should be a silent no-op")
	}
}

func TestRegistry_RemoveConnection(t *testing.T) {
	reg := NewRegistry(DefaultMaxRounds)
	roomID, _ := reg.CreateRoom("Alice", "conn1")
	reg.JoinRoom(roomID, "Bob", "conn2")

	// One of two players leaves: room survives, state untouched.
	res, ok := reg.RemoveConnection("conn1")
	if !ok {
		t.Fatal("RemoveConnection should report the association")
	}
	if res.Destroyed {
		t.Fatal("Room with a remaining player should survive")
	}
	if len(res.Snapshot.Players) != 1 || res.Snapshot.Players[0].Name != "Bob" {
		t.Errorf("Expected Bob to remain, got %+v", res.Snapshot.Players)
	}

	// A choice from the departed connection is now a benign no-op.
	if _, _, ok := reg.SubmitChoice("conn1", game.ChoiceRock); ok {
		t.Error("Departed connection should be unassociated")
	}

	// Sole remaining player leaves: room destroyed, id gone.
	res, ok = reg.RemoveConnection("conn2")
	if !ok || !res.Destroyed {
		t.Fatal("Removing the last player should destroy the room")
	}
	if _, exists := reg.GetRoom(roomID); exists {
		t.Error("Destroyed room should no longer be reachable")
	}
	if _, err := reg.JoinRoom(roomID, "Carol", "conn3"); err != ErrRoomNotFound {
		t.Errorf("Join after teardown should yield ErrRoomNotFound, got %v", err)
	}
}

func TestRegistry_RemoveConnection_Unassociated(t *testing.T) {
	reg := NewRegistry(DefaultMaxRounds)

	if _, ok := reg.RemoveConnection("ghost"); ok {
		t.Error("Disconnect of an unknown connection should be a silent no-op")
	}
}

// Full match: Alice beats Bob five rounds straight.
func TestRegistry_FullMatchScenario(t *testing.T) {
	reg := NewRegistry(5)

	roomID, _ := reg.CreateRoom("Alice", "alice-conn")

	snap, err := reg.JoinRoom(roomID, "Bob", "bob-conn")
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if len(snap.Players) != 2 || snap.GameState != StatusWaiting {
		t.Fatalf("Expected 2 waiting players, got %+v", snap)
	}

	var out *ChoiceOutcome
	for round := 1; round <= 5; round++ {
		if res, _, ok := reg.SubmitChoice("alice-conn", game.ChoiceRock); !ok || res.RoundResult != nil {
			t.Fatalf("Round %d: first submission should not resolve", round)
		}
		var ok bool
		out, _, ok = reg.SubmitChoice("bob-conn", game.ChoiceScissors)
		if !ok || out.RoundResult == nil {
			t.Fatalf("Round %d: second submission should resolve", round)
		}
		if out.RoundResult.Round != round {
			t.Fatalf("Expected round %d, got %d", round, out.RoundResult.Round)
		}
		if out.RoundResult.Player1.Score != round || out.RoundResult.Player2.Score != 0 {
			t.Fatalf("Round %d: expected score %d-0, got %d-%d", round, round,
				out.RoundResult.Player1.Score, out.RoundResult.Player2.Score)
		}
	}

	if out.GameOver == nil {
		t.Fatal("GameOver should fire after round 5")
	}
	if out.GameOver.Winner != "Alice" {
		t.Errorf("Expected Alice to win the match, got %q", out.GameOver.Winner)
	}
	if out.Snapshot.GameState != StatusFinished {
		t.Errorf("Expected finished, got %s", out.Snapshot.GameState)
	}

	// Further choices change nothing.
	after, _, ok := reg.SubmitChoice("bob-conn", game.ChoiceRock)
	if !ok {
		t.Fatal("Connection should still be associated after the match")
	}
	if after.RoundResult != nil || after.Snapshot.Round != 5 {
		t.Error("Finished match should ignore further choices")
	}
}

func TestRegistry_ParallelRoomsAreIndependent(t *testing.T) {
	reg := NewRegistry(DefaultMaxRounds)

	room1, _ := reg.CreateRoom("Alice", "c1")
	reg.JoinRoom(room1, "Bob", "c2")
	room2, _ := reg.CreateRoom("Carol", "c3")
	reg.JoinRoom(room2, "Dave", "c4")

	reg.SubmitChoice("c1", game.ChoiceRock)
	out, _, _ := reg.SubmitChoice("c2", game.ChoicePaper)
	if out.RoundResult == nil || out.RoundResult.Winner != "c2" {
		t.Fatal("Room 1 should have resolved with Bob winning")
	}

	rm2, _ := reg.GetRoom(room2)
	if snap := rm2.Snapshot(); snap.Round != 0 || snap.GameState != StatusWaiting {
		t.Error("Room 2 should be untouched by room 1's traffic")
	}
}
