package system

import (
	"testing"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
)

func TestEnemyHitsPlayer(t *testing.T) {
	opts := config.DefaultOptions()
	// Полоса ракеты: x = 100 + 20 - 2.5 = 117.5
	p := component.Projectile{Owner: component.OwnerEnemy, X: 100, Y: 400}

	tests := []struct {
		name    string
		y       float64
		playerX float64
		want    Outcome
	}{
		{"far above", 100, 100, Miss},
		{"approaching", 60, 100, Miss},
		{"inside cannon", 40, 100, Hit},
		{"left edge exclusive", 40, 117.5, Miss},
		{"right edge exclusive", 40, 67.5, Miss},
		{"just inside right", 40, 68, Hit},
		{"beside cannon", 40, 300, Miss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnemyHitsPlayer(p, tt.y, tt.playerX, opts); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerHitsFormation(t *testing.T) {
	opts := config.DefaultOptions()
	aliens := []component.Alien{
		{ID: "t2n1", Type: 2, X: 100, Y: 300},
		{ID: "t2n2", Type: 2, X: 160, Y: 300},
		{ID: "t1n1", Type: 1, X: 100, Y: 360},
	}
	// Полоса ракеты игрока: x = X + 25 - 2.5
	at := func(x float64) component.Projectile {
		return component.Projectile{Owner: component.OwnerPlayer, X: x - 22.5}
	}

	tests := []struct {
		name    string
		x, y    float64
		aliens  []component.Alien
		want    Outcome
		wantIdx int
	}{
		{"no aliens", 120, 320, nil, Passed, -1},
		{"below formation", 120, 280, aliens, Miss, -1},
		{"above formation", 120, 395, aliens, Passed, -1},
		{"front row body", 120, 320, aliens, Hit, 0},
		{"second column", 180, 320, aliens, Hit, 1},
		{"back row", 120, 380, aliens, Hit, 2},
		{"bottom slice is not body", 120, 305, aliens, Miss, -1},
		{"gap between columns", 150, 320, aliens, Miss, -1},
		{"x edge exclusive", 100, 320, aliens, Miss, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, idx := PlayerHitsFormation(at(tt.x), tt.y, tt.aliens, opts)
			if got != tt.want || idx != tt.wantIdx {
				t.Fatalf("got (%v, %d), want (%v, %d)", got, idx, tt.want, tt.wantIdx)
			}
		})
	}
}

func TestLaneX(t *testing.T) {
	opts := config.DefaultOptions()
	if got := LaneX(component.Projectile{Owner: component.OwnerPlayer, X: 10}, opts); got != 32.5 {
		t.Fatalf("player lane: got %v", got)
	}
	if got := LaneX(component.Projectile{Owner: component.OwnerEnemy, X: 10}, opts); got != 27.5 {
		t.Fatalf("enemy lane: got %v", got)
	}
}
