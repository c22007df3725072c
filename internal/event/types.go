// internal/event/types.go
package event

const (
	MatchStarted      EventType = "MatchStarted"      // Новый матч (или рестарт) начался
	ProjectileFired   EventType = "ProjectileFired"   // Ракета выпущена, Data: component.Projectile
	ProjectileRemoved EventType = "ProjectileRemoved" // Data: types.EntityID
	FormationReversed EventType = "FormationReversed" // Строй упёрся в край, Data: новое направление (int)
	AlienDestroyed    EventType = "AlienDestroyed"    // Data: component.Alien
	PlayerHit         EventType = "PlayerHit"         // Data: оставшиеся жизни (int)
	SpeedChanged      EventType = "SpeedChanged"      // Data: новый интервал тика, мс (int)
	MatchWon          EventType = "MatchWon"          // Строй уничтожен, Data: счёт (int)
	MatchLost         EventType = "MatchLost"         // Жизни кончились или строй дошёл до пола, Data: счёт (int)
	MatchClosed       EventType = "MatchClosed"       // Игрок вышел
)
