package game

import (
	"reflect"
	"testing"
)

func committed(bets ...int) []*Player {
	players := make([]*Player, len(bets))
	for i, b := range bets {
		players[i] = &Player{Name: string(rune('A' + i)), TotalBet: b}
	}
	return players
}

func TestBuildPotsSingleLevel(t *testing.T) {
	t.Parallel()

	players := committed(50, 50, 50)
	pots := buildPots(players, true)

	want := []Pot{{Amount: 150, Eligible: []int{0, 1, 2}}}
	if !reflect.DeepEqual(pots, want) {
		t.Fatalf("buildPots() = %+v, want %+v", pots, want)
	}
}

func TestBuildPotsEmpty(t *testing.T) {
	t.Parallel()

	if pots := buildPots(committed(0, 0), true); pots != nil {
		t.Errorf("expected no pots, got %+v", pots)
	}
}

func TestBuildPotsSidePots(t *testing.T) {
	t.Parallel()

	// B is all-in for 30, C for 60, A and D cover 100
	players := committed(100, 30, 60, 100)
	pots := buildPots(players, true)

	want := []Pot{
		{Amount: 120, Eligible: []int{0, 1, 2, 3}},
		{Amount: 90, Eligible: []int{0, 2, 3}},
		{Amount: 80, Eligible: []int{0, 3}},
	}
	if !reflect.DeepEqual(pots, want) {
		t.Fatalf("buildPots() = %+v, want %+v", pots, want)
	}
}

func TestBuildPotsFoldedChipsStayInPlay(t *testing.T) {
	t.Parallel()

	// D folded after putting in 80, more than the short all-in covered
	players := committed(100, 30, 100, 80)
	players[3].Folded = true
	pots := buildPots(players, true)

	want := []Pot{
		{Amount: 120, Eligible: []int{0, 1, 2}},
		{Amount: 190, Eligible: []int{0, 2}},
	}
	if !reflect.DeepEqual(pots, want) {
		t.Fatalf("buildPots() = %+v, want %+v", pots, want)
	}

	total := 0
	for _, p := range pots {
		total += p.Amount
	}
	if total != potTotal(players) {
		t.Errorf("pots hold %d chips, players committed %d", total, potTotal(players))
	}
}

func TestBuildPotsFoldedAboveEveryContender(t *testing.T) {
	t.Parallel()

	// A folded after the others were all-in for less
	players := committed(200, 50, 50)
	players[0].Folded = true
	pots := buildPots(players, true)

	want := []Pot{{Amount: 300, Eligible: []int{1, 2}}}
	if !reflect.DeepEqual(pots, want) {
		t.Fatalf("buildPots() = %+v, want %+v", pots, want)
	}
}

func TestBuildPotsWithoutSidePots(t *testing.T) {
	t.Parallel()

	players := committed(100, 30, 60, 100)
	players[2].Folded = true
	pots := buildPots(players, false)

	want := []Pot{{Amount: 290, Eligible: []int{0, 1, 3}}}
	if !reflect.DeepEqual(pots, want) {
		t.Fatalf("buildPots() = %+v, want %+v", pots, want)
	}
}
